package main

import (
	"fmt"
	"os"

	"github.com/pbanos/id3/tree"
	"github.com/spf13/cobra"
)

type testCmdConfig struct {
	*rootCmdConfig
	trainingInput string
	dataInput     string
}

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &testCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the performance of a tree",
		Long:  `Grow a tree from a training dataset and test its accuracy against a testing dataset`,
		Run: func(cmd *cobra.Command, args []string) {
			defer config.Sync()
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			s, err := config.settings()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			trainingSet, err := config.loadDataset(cmd.Context(), config.trainingInput, s)
			if err != nil {
				fmt.Fprintf(os.Stderr, "reading training set: %v\n", err)
				os.Exit(3)
			}
			testingSet, err := config.loadDataset(cmd.Context(), config.dataInput, s)
			if err != nil {
				fmt.Fprintf(os.Stderr, "reading testing set: %v\n", err)
				os.Exit(4)
			}
			attributes, err := s.candidates(trainingSet)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
			config.Logf("Growing tree from a set with %d records...", trainingSet.Count())
			n, err := s.grower().Build(cmd.Context(), trainingSet, attributes)
			if err != nil {
				fmt.Fprintf(os.Stderr, "growing the tree: %v\n", err)
				os.Exit(8)
			}
			config.Logf("Testing tree against testset with %d records...", testingSet.Count())
			successRate, unknown := tree.Test(n, testingSet)
			config.Logf("Done")
			fmt.Fprintf(cmd.OutOrStdout(), "%f success rate, failed to make a prediction for %d records\n", successRate, unknown)
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.trainingInput), "training", "t", "", "path to a CSV/ARFF or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with data to grow the tree (required)")
	cmd.PersistentFlags().StringVarP(&(config.dataInput), "input", "i", "", "path to a CSV/ARFF or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with data to test the tree (defaults to STDIN, interpreted as CSV)")
	return cmd
}

func (tcc *testCmdConfig) Validate() error {
	if tcc.trainingInput == "" {
		return fmt.Errorf("required training flag was not set")
	}
	if tcc.trainingInput == tcc.dataInput {
		return fmt.Errorf("training and testing datasets must come from different inputs")
	}
	return nil
}
