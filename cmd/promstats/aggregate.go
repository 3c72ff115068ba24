// cmd/promstats/aggregate.go
package promstats

import (
	"github.com/spf13/cobra"

	"github.com/mwiater/promstats/internal/aggregate"
	"github.com/mwiater/promstats/internal/report"
)

// aggregateCmd implements 'aggregate', one evaluation step over a series file.
var aggregateCmd = &cobra.Command{
	Use:   "aggregate",
	Short: "Apply an aggregation op to a series file",
	Long:  `The 'aggregate' command evaluates one op (see 'list aggregations') over the series in a file: across series grouped --by labels, or over each series' own samples for the *_over_time ops.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		opName, _ := cmd.Flags().GetString("op")
		op, err := aggregate.ParseOp(opName)
		if err != nil {
			return err
		}
		series, err := loadSeries(cmd, cfg)
		if err != nil {
			return err
		}

		param, _ := cmd.Flags().GetFloat64("param")
		by, _ := cmd.Flags().GetStringSlice("by")
		rows, err := aggregate.Aggregate(series, aggregate.Expr{Op: op, Param: param, By: by})
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return report.JSON(cmd.OutOrStdout(), report.NewRowDocs(rows))
		}
		return report.RowsTable(cmd.OutOrStdout(), rows, cfg.Precision)
	},
}

func init() {
	aggregateCmd.Flags().String("op", "", "aggregation op, e.g. stddev or quantile_over_time")
	aggregateCmd.Flags().Float64("param", 0, "quantile argument for quantile ops")
	aggregateCmd.Flags().StringSlice("by", nil, "grouping labels for cross-series ops")
	aggregateCmd.Flags().StringP("file", "f", "", "series file (default: input from config)")
	aggregateCmd.Flags().Bool("json", false, "print JSON instead of a table")
	aggregateCmd.MarkFlagRequired("op")
	rootCmd.AddCommand(aggregateCmd)
}
