package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tabwork/sheetrecon/internal/loader"
	"github.com/tabwork/sheetrecon/pkg/compare"
	"github.com/tabwork/sheetrecon/pkg/datasets"
	"github.com/tabwork/sheetrecon/pkg/logging"
)

// newCompareCmd compares one worksheet of each of two files.
func newCompareCmd() *cobra.Command {
	var sheet1, sheet2 string

	cmd := &cobra.Command{
		Use:   "compare <file1> <file2>",
		Short: "Compare two files worksheet against worksheet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := resolveWorksheet(args[0], sheet1)
			if err != nil {
				return err
			}
			target, err := resolveWorksheet(args[1], sheet2)
			if err != nil {
				return err
			}

			comparator := compare.New(compare.WithMatchThreshold(viper.GetFloat64("threshold")))
			result := comparator.Compare(cmd.Context(), source, target)

			return writeOutput(cmd.OutOrStdout(), viper.GetString("output"), result, renderResult)
		},
	}

	cmd.Flags().StringVar(&sheet1, "sheet1", "", "worksheet name in file1 (default: first worksheet)")
	cmd.Flags().StringVar(&sheet2, "sheet2", "", "worksheet name in file2 (default: first worksheet)")

	return cmd
}

// resolveWorksheet loads a file and picks the named worksheet, or the first
// one when no name is given.
func resolveWorksheet(path, sheet string) (*datasets.Dataset, error) {
	sheets, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s contains no worksheets", path)
	}

	if sheet == "" {
		logging.Debug().Str("file", path).Str("worksheet", sheets[0].Name).Msg("Using first worksheet")
		return sheets[0], nil
	}
	for _, ds := range sheets {
		if ds.Name == sheet {
			return ds, nil
		}
	}
	return nil, fmt.Errorf("worksheet %q not found in %s", sheet, path)
}
