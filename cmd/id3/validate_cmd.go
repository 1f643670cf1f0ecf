package main

import (
	"fmt"
	"os"

	"github.com/pbanos/id3/crossval"
	"github.com/spf13/cobra"
)

type validateCmdConfig struct {
	*rootCmdConfig
	dataInput string
}

func validateCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &validateCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Cross-validate trees grown from a dataset",
		Long: `Split a dataset in folds and, for each of them, grow a tree with the
records in the other folds and test it against the records in the fold.
Prints the accuracy of every fold and the mean accuracy.`,
		Run: func(cmd *cobra.Command, args []string) {
			defer config.Sync()
			s, err := config.settings()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			cfg := config.crossvalConfig(s)
			d, err := config.loadDataset(cmd.Context(), config.dataInput, s)
			if err != nil {
				fmt.Fprintf(os.Stderr, "reading dataset: %v\n", err)
				os.Exit(4)
			}
			attributes, err := s.candidates(d)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
			config.Logf("Cross-validating over %d records with %d folds...", d.Count(), cfg.Folds)
			report, err := crossval.Run(cmd.Context(), d, attributes, cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "cross-validating: %v\n", err)
				os.Exit(8)
			}
			config.Logf("Done")
			out := cmd.OutOrStdout()
			for _, f := range report.Folds {
				fmt.Fprintf(out, "Test %d: %.2f%% accuracy, %d/%d training/testing records, %d unknown, depth %d\n", f.Fold+1, f.Accuracy, f.Training, f.Testing, f.Unknown, f.Depth)
			}
			fmt.Fprintf(out, "Mean accuracy: %.2f%%\n", report.MeanAccuracy)
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV/ARFF or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with the data to cross-validate on (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().IntP("folds", "k", crossval.DefaultFolds, "number of folds")
	cmd.PersistentFlags().Bool("shuffle", true, "shuffle the records before splitting them in folds")
	cmd.PersistentFlags().Int64("seed", 1, "seed of the shuffle")
	cmd.PersistentFlags().Int("workers", 0, "maximum number of folds evaluated at a time (defaults to 0: no limit)")
	for _, key := range []string{"folds", "shuffle", "seed", "workers"} {
		_ = rootConfig.v.BindPFlag(key, cmd.PersistentFlags().Lookup(key))
	}
	return cmd
}

func (vcc *validateCmdConfig) crossvalConfig(s *settings) crossval.Config {
	return crossval.Config{
		Folds:   vcc.v.GetInt("folds"),
		Shuffle: vcc.v.GetBool("shuffle"),
		Seed:    vcc.v.GetInt64("seed"),
		Workers: vcc.v.GetInt("workers"),
		Grower:  s.grower(),
	}
}
