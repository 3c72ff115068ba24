// internal/aggregate/aggregate.go

// Package aggregate applies the statistics functions the way a query
// evaluator does: across series grouped by labels, or over each series'
// own samples.
package aggregate

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/mwiater/promstats/internal/samples"
	"github.com/mwiater/promstats/internal/stats"
)

var (
	// ErrUnknownOp is returned by ParseOp for names outside the supported set.
	ErrUnknownOp = errors.New("unknown aggregation")
	// ErrGroupingNotAllowed is returned when by-labels are given to an over-time op.
	ErrGroupingNotAllowed = errors.New("grouping is not allowed for over-time aggregations")
)

// Op names an aggregation step.
type Op string

const (
	OpAvg      Op = "avg"
	OpStdvar   Op = "stdvar"
	OpStddev   Op = "stddev"
	OpQuantile Op = "quantile"

	OpAvgOverTime      Op = "avg_over_time"
	OpStdvarOverTime   Op = "stdvar_over_time"
	OpStddevOverTime   Op = "stddev_over_time"
	OpQuantileOverTime Op = "quantile_over_time"
)

// Ops lists every supported op in display order.
var Ops = []Op{
	OpAvg, OpStdvar, OpStddev, OpQuantile,
	OpAvgOverTime, OpStdvarOverTime, OpStddevOverTime, OpQuantileOverTime,
}

// ParseOp resolves an op name, case-insensitively.
func ParseOp(name string) (Op, error) {
	op := Op(strings.ToLower(strings.TrimSpace(name)))
	for _, o := range Ops {
		if o == op {
			return o, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOp, name)
}

// OverTime reports whether the op works per series over its samples.
func (o Op) OverTime() bool {
	return strings.HasSuffix(string(o), "_over_time")
}

// Expr is one aggregation step.
type Expr struct {
	Op Op `json:"op"`
	// Param is the quantile argument for quantile ops, ignored otherwise.
	Param float64 `json:"param"`
	// By lists the grouping labels for cross-series ops.
	By []string `json:"by,omitempty"`
}

// Validate checks the op and its grouping.
func (e Expr) Validate() error {
	op, err := ParseOp(string(e.Op))
	if err != nil {
		return err
	}
	if op.OverTime() && len(e.By) > 0 {
		return fmt.Errorf("%s: %w", op, ErrGroupingNotAllowed)
	}
	return nil
}

// Row is one output element of an aggregation step.
type Row struct {
	Labels map[string]string `json:"labels"`
	Value  float64           `json:"value"`
	// Kind is the quantile Result kind for quantile ops and KindNone for the rest.
	Kind stats.Kind `json:"-"`
}

// Aggregate evaluates expr over series. Rows whose statistic has no value
// are dropped; rows are ordered by their label signature.
func Aggregate(series []samples.Series, expr Expr) ([]Row, error) {
	if err := expr.Validate(); err != nil {
		return nil, err
	}
	expr.Op, _ = ParseOp(string(expr.Op))

	var rows []Row
	if expr.Op.OverTime() {
		rows = overTime(series, expr)
	} else {
		rows = acrossSeries(series, expr)
	}

	sort.Slice(rows, func(i, j int) bool {
		return samples.LabelString(rows[i].Labels) < samples.LabelString(rows[j].Labels)
	})
	return rows, nil
}

// group collects one latest value per member series along with the running
// moments needed by the variance entry points.
type group struct {
	labels map[string]string
	values []float64
	sum    float64
	count  int64
}

func (g *group) add(v float64) {
	g.values = append(g.values, v)
	g.sum += v
	g.count++
}

func (g *group) mean() float64 {
	return g.sum / float64(g.count)
}

func acrossSeries(series []samples.Series, expr Expr) []Row {
	byKey := map[string]*group{}
	for _, s := range series {
		v, ok := s.Latest()
		if !ok {
			continue
		}
		labels := groupLabels(s.Labels, expr.By)
		key := samples.LabelString(labels)
		g, ok := byKey[key]
		if !ok {
			g = &group{labels: labels}
			byKey[key] = g
		}
		g.add(v)
	}

	rows := make([]Row, 0, len(byKey))
	for _, g := range byKey {
		var (
			v    float64
			ok   bool
			kind stats.Kind
		)
		switch expr.Op {
		case OpAvg:
			v, ok = stats.Mean(g.values)
		case OpStdvar:
			v, ok = stats.VarianceWithMean(g.values, g.mean(), g.count)
		case OpStddev:
			v, ok = stats.StdDeviationWithMean(g.values, g.mean(), g.count)
		case OpQuantile:
			r := stats.Quantile(g.values, expr.Param)
			v, ok = r.Float64()
			kind = r.Kind
		}
		if ok {
			rows = append(rows, Row{Labels: g.labels, Value: v, Kind: kind})
		}
	}
	return rows
}

func overTime(series []samples.Series, expr Expr) []Row {
	rows := make([]Row, 0, len(series))
	for _, s := range series {
		var (
			v    float64
			ok   bool
			kind stats.Kind
		)
		switch expr.Op {
		case OpAvgOverTime:
			v, ok = stats.Mean(s.Samples)
		case OpStdvarOverTime:
			v, ok = stats.Variance(s.Samples)
		case OpStddevOverTime:
			v, ok = stats.StdDeviation(s.Samples)
		case OpQuantileOverTime:
			r := stats.Quantile(s.Samples, expr.Param)
			// A saturated quantile on an empty range still has nothing to attach to.
			if len(s.Samples) == 0 {
				continue
			}
			v, ok = r.Float64()
			kind = r.Kind
		}
		if ok {
			rows = append(rows, Row{Labels: copyLabels(s.Labels), Value: v, Kind: kind})
		}
	}
	return rows
}

func groupLabels(labels map[string]string, by []string) map[string]string {
	out := make(map[string]string, len(by))
	for _, name := range by {
		if v, ok := labels[name]; ok {
			out[name] = v
		}
	}
	return out
}

func copyLabels(labels map[string]string) map[string]string {
	out := make(map[string]string, len(labels))
	for k, v := range labels {
		out[k] = v
	}
	return out
}
