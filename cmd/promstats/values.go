// cmd/promstats/values.go
package promstats

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwiater/promstats/internal/report"
	"github.com/mwiater/promstats/internal/samples"
	"github.com/mwiater/promstats/internal/stats"
)

const noValue = "no value"

// meanCmd implements 'mean <values...>'.
var meanCmd = &cobra.Command{
	Use:   "mean [values...]",
	Short: "Arithmetic mean of the given values",
	Long:  `The 'mean' command prints the arithmetic mean of its arguments, or "no value" when none are given. Use -- before negative values.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		values, err := samples.ParseValues(args)
		if err != nil {
			return err
		}
		printValue(cmd, report.From(stats.Mean(values)), cfg.Precision)
		return nil
	},
}

// varianceCmd implements 'variance <values...> [--mean m --count n]'.
var varianceCmd = &cobra.Command{
	Use:   "variance [values...]",
	Short: "Population variance of the given values",
	Long:  `The 'variance' command prints the population variance (divisor n) of its arguments. With --count it uses the precomputed --mean instead of deriving one; --count must be positive but the divisor stays the number of values.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDispersion(cmd, args, false)
	},
}

// stddevCmd implements 'stddev <values...> [--mean m --count n]'.
var stddevCmd = &cobra.Command{
	Use:   "stddev [values...]",
	Short: "Population standard deviation of the given values",
	Long:  `The 'stddev' command prints the square root of the population variance of its arguments, accepting the same --mean/--count pair as 'variance'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDispersion(cmd, args, true)
	},
}

// quantileCmd implements 'quantile <q> <values...>'.
var quantileCmd = &cobra.Command{
	Use:   "quantile <q> [values...]",
	Short: "Linearly interpolated q-quantile of the given values",
	Long:  `The 'quantile' command prints the q-quantile of the values using linear interpolation between order statistics. q outside [0, 1] prints +Inf or -Inf and a NaN q prints NaN, even with no values.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		q, err := samples.ParseValue(args[0])
		if err != nil {
			return fmt.Errorf("invalid quantile: %w", err)
		}
		values, err := samples.ParseValues(args[1:])
		if err != nil {
			return err
		}
		printValue(cmd, report.From(stats.Quantile(values, q).Float64()), cfg.Precision)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{varianceCmd, stddevCmd} {
		c.Flags().Float64("mean", 0, "precomputed mean (default: derived from the values)")
		c.Flags().Int64("count", 0, "sample count of the precomputed moments; enables the known-mean form")
	}
	rootCmd.AddCommand(meanCmd, varianceCmd, stddevCmd, quantileCmd)
}

// runDispersion prints the variance, or its square root when sqrt is set.
func runDispersion(cmd *cobra.Command, args []string, sqrt bool) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	values, err := samples.ParseValues(args)
	if err != nil {
		return err
	}

	if !cmd.Flags().Changed("count") {
		if sqrt {
			printValue(cmd, report.From(stats.StdDeviation(values)), cfg.Precision)
		} else {
			printValue(cmd, report.From(stats.Variance(values)), cfg.Precision)
		}
		return nil
	}

	count, _ := cmd.Flags().GetInt64("count")
	mean, _ := cmd.Flags().GetFloat64("mean")
	if !cmd.Flags().Changed("mean") {
		if m, ok := stats.Mean(values); ok {
			mean = m
		}
	}
	if sqrt {
		printValue(cmd, report.From(stats.StdDeviationWithMean(values, mean, count)), cfg.Precision)
	} else {
		printValue(cmd, report.From(stats.VarianceWithMean(values, mean, count)), cfg.Precision)
	}
	return nil
}

func printValue(cmd *cobra.Command, n report.Number, precision int) {
	if !n.Valid {
		fmt.Fprintln(cmd.OutOrStdout(), noValue)
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), report.FormatFloat(n.Value, precision))
}
