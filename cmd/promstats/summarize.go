// cmd/promstats/summarize.go
package promstats

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mwiater/promstats/internal/aggregate"
	"github.com/mwiater/promstats/internal/config"
	"github.com/mwiater/promstats/internal/report"
	"github.com/mwiater/promstats/internal/samples"
)

var errNoInput = errors.New("no series file: pass --file or set input in the config")

// summarizeCmd implements 'summarize', one summary line per series.
var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Summarize every series in a series file",
	Long:  `The 'summarize' command prints count, mean, standard deviation, variance, min, max and the configured quantiles for every series in a JSON series file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		series, err := loadSeries(cmd, cfg)
		if err != nil {
			return err
		}

		quantiles := cfg.Quantiles
		if cmd.Flags().Changed("quantiles") {
			quantiles, _ = cmd.Flags().GetFloat64Slice("quantiles")
		}
		summaries := aggregate.SummarizeAll(series, quantiles)

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			docs := make([]report.SummaryDoc, len(summaries))
			for i, s := range summaries {
				docs[i] = report.NewSummaryDoc(s)
			}
			return report.JSON(cmd.OutOrStdout(), docs)
		}
		return report.SummaryTable(cmd.OutOrStdout(), summaries, cfg.Precision)
	},
}

func init() {
	summarizeCmd.Flags().StringP("file", "f", "", "series file (default: input from config)")
	summarizeCmd.Flags().Float64Slice("quantiles", nil, "quantiles to report (default: quantiles from config)")
	summarizeCmd.Flags().Bool("json", false, "print JSON instead of a table")
	rootCmd.AddCommand(summarizeCmd)
}

// loadSeries reads the file named by --file, falling back to cfg.Input.
func loadSeries(cmd *cobra.Command, cfg config.Config) ([]samples.Series, error) {
	path, _ := cmd.Flags().GetString("file")
	if path == "" {
		path = cfg.Input
	}
	if path == "" {
		return nil, errNoInput
	}
	series, err := samples.Load(path)
	if err != nil {
		return nil, err
	}
	if cfg.Debug {
		report.Debug(cmd.ErrOrStderr(), series)
	}
	return series, nil
}
