package main

import (
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tabwork/sheetrecon/internal/loader"
	"github.com/tabwork/sheetrecon/pkg/batch"
	"github.com/tabwork/sheetrecon/pkg/compare"
	"github.com/tabwork/sheetrecon/pkg/datasets"
	pkgerrors "github.com/tabwork/sheetrecon/pkg/errors"
	"github.com/tabwork/sheetrecon/pkg/logging"
)

// manifest is the YAML document the batch command consumes.
type manifest struct {
	// Files maps a file ID to a path on disk.
	Files map[string]string `yaml:"files"`
	// Requests name the worksheet pairs to compare, by file ID.
	Requests []batch.Request `yaml:"requests"`
}

// newBatchCmd runs a manifest of comparison requests.
func newBatchCmd() *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "batch <manifest.yaml>",
		Short: "Run a manifest of worksheet comparisons",
		Long: `Reads a YAML manifest naming source files and the worksheet pairs to
compare, runs every resolvable comparison, and reports per-file integrity
summaries. Requests that reference missing files or worksheets are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readManifest(args[0])
			if err != nil {
				return err
			}

			store := datasets.NewStore()
			for id, path := range m.Files {
				sheets, err := loader.Load(path)
				if err != nil {
					// Per-request isolation starts here: an unreadable file
					// surfaces later as skipped requests, not a dead batch.
					logging.Warn().Err(err).Str("file", id).Msg("Skipping unreadable file")
					continue
				}
				for _, ds := range sheets {
					if err := store.Add(id, ds); err != nil {
						logging.Warn().Err(err).Str("file", id).Str("worksheet", ds.Name).Msg("Skipping worksheet")
					}
				}
			}

			reconciler := batch.New(store,
				batch.WithWorkers(workers),
				batch.WithCompareOptions(compare.WithMatchThreshold(viper.GetFloat64("threshold"))),
			)
			report := reconciler.Run(cmd.Context(), m.Requests)

			return writeOutput(cmd.OutOrStdout(), viper.GetString("output"), report, renderReport)
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 4, "concurrent comparison workers")

	return cmd
}

// readManifest parses a batch manifest from disk.
func readManifest(path string) (*manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pkgerrors.WrapIO("read", path, err)
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, pkgerrors.WrapParse("yaml", path, err)
	}
	if len(m.Requests) == 0 {
		return nil, pkgerrors.NewValidationError("requests", nil, "manifest declares no requests")
	}
	return &m, nil
}
