// cmd/promstats/root.go
package promstats

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/promstats/internal/config"
	"github.com/mwiater/promstats/internal/report"
)

// cfgFile is the --config path; empty means promstats.* in the working directory.
var cfgFile string

// rootCmd is the base Cobra command for the promstats application.
// All subcommands are attached to this root to form the complete CLI.
var rootCmd = &cobra.Command{
	Use:   "promstats",
	Short: "Descriptive statistics over time-series samples",
	Long:  `promstats computes mean, population variance, standard deviation and quantiles over sample sets, and applies them as query-style aggregations over series files.`,
}

// Execute runs the root Cobra command and all registered subcommands.
// It prints any returned error and exits the process with a non-zero
// status code on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./promstats.{yaml,json,toml})")
	rootCmd.PersistentFlags().Bool("debug", false, "dump resolved configuration and inputs")
	rootCmd.PersistentFlags().Int("precision", -1, "decimals to print, -1 for the shortest exact form")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("precision", rootCmd.PersistentFlags().Lookup("precision"))
}

// loadConfig resolves flags, environment and config file into a Config.
// With debug on, the result is dumped to stderr.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(viper.GetViper(), cfgFile)
	if err != nil {
		return cfg, err
	}
	if cfg.Debug {
		report.Debug(cmd.ErrOrStderr(), cfg)
	}
	return cfg, nil
}
