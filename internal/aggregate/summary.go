// internal/aggregate/summary.go
package aggregate

import (
	"github.com/mwiater/promstats/internal/samples"
	"github.com/mwiater/promstats/internal/stats"
)

// Optional is a statistic that may have no value.
type Optional struct {
	Value float64
	Valid bool
}

func optional(v float64, ok bool) Optional {
	return Optional{Value: v, Valid: ok}
}

// QuantilePoint pairs a requested quantile with its result.
type QuantilePoint struct {
	Q      float64
	Result stats.Result
}

// Summary aggregates descriptive statistics for one series.
type Summary struct {
	Name  string
	Count int

	Mean     Optional
	Variance Optional
	StdDev   Optional
	Min      Optional
	Max      Optional

	Quantiles []QuantilePoint
}

// Summarize builds the summary of a single series.
func Summarize(s samples.Series, quantiles []float64) Summary {
	sum := Summary{
		Name:      s.Name(),
		Count:     len(s.Samples),
		Mean:      optional(stats.Mean(s.Samples)),
		Variance:  optional(stats.Variance(s.Samples)),
		StdDev:    optional(stats.StdDeviation(s.Samples)),
		Min:       optional(stats.Quantile(s.Samples, 0).Float64()),
		Max:       optional(stats.Quantile(s.Samples, 1).Float64()),
		Quantiles: make([]QuantilePoint, 0, len(quantiles)),
	}
	for _, q := range quantiles {
		sum.Quantiles = append(sum.Quantiles, QuantilePoint{Q: q, Result: stats.Quantile(s.Samples, q)})
	}
	return sum
}

// SummarizeAll summarizes every series, keeping input order.
func SummarizeAll(series []samples.Series, quantiles []float64) []Summary {
	out := make([]Summary, 0, len(series))
	for _, s := range series {
		out = append(out, Summarize(s, quantiles))
	}
	return out
}
