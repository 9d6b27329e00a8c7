package main

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tabwork/sheetrecon/pkg/logging"
)

// newRootCmd builds the sheetrecon command tree.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sheetrecon",
		Short: "Reconcile tabular datasets across re-exports",
		Long: `sheetrecon compares spreadsheet and CSV exports that should represent the
same logical data. It matches columns by name despite renaming drift, matches
rows by content despite reordering, and classifies how similar the datasets
are.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging()
		},
	}

	root.PersistentFlags().String("log-level", "info", "log level (trace, debug, info, warn, error)")
	root.PersistentFlags().StringP("output", "o", "text", "output format (text, json, yaml)")
	root.PersistentFlags().Float64("threshold", 0.90, "minimum row similarity for a match")

	viper.SetEnvPrefix("SHEETRECON")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlag("log-level", root.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("output", root.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("threshold", root.PersistentFlags().Lookup("threshold"))

	root.AddCommand(newCompareCmd())
	root.AddCommand(newBatchCmd())

	return root
}

// configureLogging applies the configured level to the global logger.
func configureLogging() {
	level, err := zerolog.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	logging.SetDefault(logging.Default().Level(level))
}
