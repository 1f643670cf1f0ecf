package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pbanos/id3/tree"
	"github.com/spf13/cobra"
)

type growCmdConfig struct {
	*rootCmdConfig
	dataInput string
	output    string
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a dataset",
		Long:  `Grow a binary decision tree from a labeled dataset and print it.`,
		Run: func(cmd *cobra.Command, args []string) {
			defer config.Sync()
			s, err := config.settings()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			trainingSet, err := config.loadDataset(cmd.Context(), config.dataInput, s)
			if err != nil {
				fmt.Fprintf(os.Stderr, "reading training set: %v\n", err)
				os.Exit(4)
			}
			attributes, err := s.candidates(trainingSet)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
			config.Logf("Growing tree from a set with %d records and %d attributes with the %s attribute policy...", trainingSet.Count(), len(attributes), s.policy)
			n, err := s.grower().Build(cmd.Context(), trainingSet, attributes)
			if err != nil {
				fmt.Fprintf(os.Stderr, "growing the tree: %v\n", err)
				os.Exit(8)
			}
			config.Logf("Done, tree has depth %d", tree.Depth(n))
			err = outputTree(config.output, cmd.OutOrStdout(), tree.Format(n, s.names()))
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(9)
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV/ARFF or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with data to grow the tree (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the tree will be written (defaults to STDOUT)")
	return cmd
}

func outputTree(outputPath string, stdout io.Writer, t string) error {
	if outputPath == "" {
		_, err := io.WriteString(stdout, t)
		return err
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating tree output %s: %w", outputPath, err)
	}
	defer f.Close()
	if _, err = io.WriteString(f, t); err != nil {
		return fmt.Errorf("writing tree to %s: %w", outputPath, err)
	}
	return nil
}
