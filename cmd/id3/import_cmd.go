package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type importCmdConfig struct {
	*rootCmdConfig
	dataInput string
	output    string
}

func importCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &importCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Copy a dataset into a database",
		Long: `Read a dataset and store it on a table of an SQLite3 or PostgreSQL
database or on a MongoDB collection, so that other commands can read it from there.`,
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
			d, err := config.loadDataset(cmd.Context(), config.dataInput, s)
			if err != nil {
				fmt.Fprintf(os.Stderr, "reading dataset: %v\n", err)
				os.Exit(4)
			}
			count, err := config.storeDataset(cmd.Context(), config.output, s, d)
			if err != nil {
				fmt.Fprintf(os.Stderr, "storing dataset: %v\n", err)
				os.Exit(9)
			}
			config.Logf("Done, %d records stored", count)
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV/ARFF or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with the data to import (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to an SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL to store the data on (required)")
	return cmd
}

func (icc *importCmdConfig) Validate() error {
	if icc.output == "" {
		return fmt.Errorf("required output flag was not set")
	}
	if sourceOf(icc.output) == fileSource {
		return fmt.Errorf("output %s is not an SQLite3 (.db) file nor a PostgreSQL or MongoDB URL", icc.output)
	}
	return nil
}
