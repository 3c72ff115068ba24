// cmd/promstats/explore.go
package promstats

import (
	"github.com/spf13/cobra"

	"github.com/mwiater/promstats/internal/tui"
)

var startExplorer = tui.Start

// exploreCmd implements 'explore', the interactive series browser.
var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Browse a series file interactively",
	Long:  `The 'explore' command opens a terminal UI listing the series in a file; selecting one shows its summary and accepts ad-hoc quantile queries.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		path, _ := cmd.Flags().GetString("file")
		if path == "" {
			path = cfg.Input
		}
		if path == "" {
			return errNoInput
		}
		return startExplorer(path, cfg)
	},
}

func init() {
	exploreCmd.Flags().StringP("file", "f", "", "series file (default: input from config)")
	rootCmd.AddCommand(exploreCmd)
}
