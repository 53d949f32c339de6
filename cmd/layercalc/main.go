// layercalc sizes the index trees of a hypothetical layer file across a
// sweep of value sizes and prints one coverage row per index kind.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"layercalc/pkg/config"
	"layercalc/pkg/report"
	"layercalc/pkg/sweep"
)

func main() {
	var (
		configPath    string
		minBranch     uint64
		minDataBlock  string
		minIndexBlock string
		totalDataSize uint
		minValueShift uint
		maxValueShift uint
		indexes       []string
		dbPath        string
		verbose       bool
	)

	rootCmd := &cobra.Command{
		Use:   "layercalc",
		Short: "Capacity calculator for layer-file index trees",
		Long: `layercalc models a multi-level fixed-fanout index over a sorted columnar
file. For each value size in a power-of-two sweep it derives, per index kind,
the tree height, the per-level coverage and the total index footprint.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			// Flags win over the config file, but only when actually set.
			fl := cmd.Flags()
			if fl.Changed("min-branch") {
				cfg.Params.MinBranch = minBranch
			}
			if fl.Changed("min-data-block") {
				cfg.Params.MinDataBlock = minDataBlock
			}
			if fl.Changed("min-index-block") {
				cfg.Params.MinIndexBlock = minIndexBlock
			}
			if fl.Changed("total-data-size") {
				cfg.Params.TotalDataShift = totalDataSize
			}
			if fl.Changed("min-value-shift") {
				cfg.Sweep.MinValueShift = minValueShift
			}
			if fl.Changed("max-value-shift") {
				cfg.Sweep.MaxValueShift = maxValueShift
			}
			if fl.Changed("index") {
				cfg.Report.Indexes = indexes
			}
			if fl.Changed("db") {
				cfg.Report.DBPath = dbPath
			}

			params, err := cfg.ModelParams()
			if err != nil {
				return err
			}
			kinds, err := cfg.Kinds()
			if err != nil {
				return err
			}

			log := zap.NewNop()
			if verbose {
				log, err = zap.NewDevelopment()
				if err != nil {
					return fmt.Errorf("init logger: %w", err)
				}
				defer log.Sync()
			}

			results, err := sweep.Run(sweep.Config{
				Base:       params,
				ValueSizes: sweep.ValueSizes(cfg.Sweep.MinValueShift, cfg.Sweep.MaxValueShift),
				Log:        log,
			})
			if err != nil {
				return err
			}

			report.Table(os.Stdout, params, results, kinds)

			if cfg.Report.DBPath != "" {
				sink, err := report.OpenSink(cfg.Report.DBPath)
				if err != nil {
					return err
				}
				defer sink.Close()
				if err := sink.WriteResults(results, kinds); err != nil {
					return err
				}
				log.Info("wrote sizing rows", zap.String("path", cfg.Report.DBPath))
			}
			return nil
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to a layercalc.yaml config file")
	rootCmd.Flags().Uint64Var(&minBranch, "min-branch", 32, "Minimum branching factor in data and index blocks")
	rootCmd.Flags().StringVar(&minDataBlock, "min-data-block", "8KiB", "Minimum data block size (bytes or a size string)")
	rootCmd.Flags().StringVar(&minIndexBlock, "min-index-block", "8KiB", "Minimum index block size (bytes or a size string)")
	rootCmd.Flags().UintVar(&totalDataSize, "total-data-size", 40, "Total data size as a power-of-2 exponent, e.g. 30 for 1 GB, 40 for 1 TB")
	rootCmd.Flags().UintVar(&minValueShift, "min-value-shift", 4, "Smallest swept value size as a power-of-2 exponent")
	rootCmd.Flags().UintVar(&maxValueShift, "max-value-shift", 16, "Largest swept value size as a power-of-2 exponent")
	rootCmd.Flags().StringSliceVar(&indexes, "index", []string{"data", "c1row", "row", "filter"}, "Index kind(s) to include (repeatable)")
	rootCmd.Flags().StringVar(&dbPath, "db", "", "Also write rows to a sqlite database at this path")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log each model build")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
