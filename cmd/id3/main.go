package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type rootCmdConfig struct {
	logger
	configFile string
	v          *viper.Viper
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cliParser().ExecuteContext(ctx)
	cancel()
	if err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	config := &rootCmdConfig{logger: newLogger(false), v: viper.New()}
	rootCmd := &cobra.Command{
		Use:   "id3",
		Short: "id3 is a tool to grow binary decision trees",
		Long: `A tool to grow binary decision trees from labeled categorical data
with the ID3 algorithm, test them and cross-validate them.

Settings are read from flags, ID3_* environment variables and the config
file ($HOME/.id3/config.yaml), in that order of precedence.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.readConfig()
		},
	}
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&(config.configFile), "config", "", "config file (default: $HOME/.id3/config.yaml)")
	flags.BoolP("verbose", "v", false, "log progress to STDERR")
	flags.StringP("positive", "P", "", "label of positive records (defaults to the one in the metadata)")
	flags.StringP("negative", "N", "", "label of negative records (defaults to the one in the metadata)")
	flags.StringP("metadata", "m", "", "path to a YML file with the attribute names and labels of the dataset")
	flags.StringSliceP("attributes", "a", nil, "names of the attributes to split on, as declared in the metadata (defaults to all)")
	flags.String("attribute-policy", "per-branch", "how candidate attributes are passed down while growing: per-branch or shared")
	flags.String("delimiter", ",", "field delimiter of CSV/ARFF inputs")
	flags.Bool("strip-quotes", false, "remove ' characters from CSV/ARFF lines before splitting them")
	flags.String("table", defaultTable, "table or collection holding the dataset on database inputs")
	flags.String("response-field", defaultResponseField, "column or field holding the response on database inputs")
	for _, key := range []string{"verbose", "positive", "negative", "metadata", "attributes", "attribute-policy", "delimiter", "strip-quotes", "table", "response-field"} {
		_ = config.v.BindPFlag(key, flags.Lookup(key))
	}
	rootCmd.AddCommand(versionCmd(), growCmd(config), testCmd(config), validateCmd(config), importCmd(config))
	return rootCmd
}

// readConfig reads the config file and ID3_* environment variables
func (rc *rootCmdConfig) readConfig() error {
	if rc.configFile != "" {
		rc.v.SetConfigFile(rc.configFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			rc.v.AddConfigPath(filepath.Join(home, ".id3"))
		}
		rc.v.SetConfigType("yaml")
		rc.v.SetConfigName("config")
	}
	rc.v.SetEnvPrefix("ID3")
	rc.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	rc.v.AutomaticEnv()
	err := rc.v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if rc.configFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	rc.logger = newLogger(rc.v.GetBool("verbose"))
	if err == nil {
		rc.Logf("Using config file %s", rc.v.ConfigFileUsed())
	}
	return nil
}
