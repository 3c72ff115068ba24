// cmd/promstats/list_aggregations.go
package promstats

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwiater/promstats/internal/aggregate"
)

// listAggregationsCmd implements 'list aggregations'.
var listAggregationsCmd = &cobra.Command{
	Use:   "aggregations",
	Short: "List the ops accepted by 'aggregate'",
	Long:  `The 'aggregations' subcommand prints every op accepted by 'promstats aggregate --op', marking the ones that take a quantile --param.`,
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		for _, op := range aggregate.Ops {
			switch {
			case op == aggregate.OpQuantile:
				fmt.Fprintf(w, "%s (--param q, --by labels)\n", op)
			case op == aggregate.OpQuantileOverTime:
				fmt.Fprintf(w, "%s (--param q)\n", op)
			case op.OverTime():
				fmt.Fprintf(w, "%s\n", op)
			default:
				fmt.Fprintf(w, "%s (--by labels)\n", op)
			}
		}
	},
}

func init() {
	listCmd.AddCommand(listAggregationsCmd)
}
