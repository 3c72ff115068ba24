// internal/stats/quantile.go
package stats

import (
	"math"
	"slices"
	"strconv"
)

// Kind tags how a quantile Result was produced.
type Kind int

const (
	// KindNone means there was no sample to take a quantile of.
	KindNone Kind = iota
	// KindValue is an order statistic or an interpolation between two.
	KindValue
	// KindNaN is returned for a NaN quantile argument.
	KindNaN
	// KindAbove is returned for q > 1; Value is +Inf.
	KindAbove
	// KindBelow is returned for q < 0; Value is -Inf.
	KindBelow
)

var kindNames = map[Kind]string{
	KindNone:  "none",
	KindValue: "value",
	KindNaN:   "nan",
	KindAbove: "above",
	KindBelow: "below",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Result is the outcome of Quantile. A quantile argument outside [0, 1]
// never yields KindNone: it saturates to the side of the domain it left.
type Result struct {
	Kind  Kind
	Value float64
}

// Float64 returns the value and whether there is one.
func (r Result) Float64() (float64, bool) {
	return r.Value, r.Kind != KindNone
}

// String renders the result the way query output prints sample values.
func (r Result) String() string {
	if r.Kind == KindNone {
		return "no value"
	}
	switch {
	case math.IsNaN(r.Value):
		return "NaN"
	case math.IsInf(r.Value, 1):
		return "+Inf"
	case math.IsInf(r.Value, -1):
		return "-Inf"
	}
	return strconv.FormatFloat(r.Value, 'f', -1, 64)
}

// Quantile returns the q-quantile of samples using linear interpolation
// between adjacent order statistics (R-7): rank = q*(n-1).
//
// The argument is checked before the samples: NaN yields NaN, q > 1 yields
// +Inf and q < 0 yields -Inf, even for an empty sequence. Otherwise an empty
// sequence yields KindNone.
//
// samples is copied before sorting. NaN samples sort ahead of every other
// value, so they surface at the low quantiles and may poison an
// interpolation; they are not rejected.
func Quantile(samples []float64, q float64) Result {
	switch {
	case math.IsNaN(q):
		return Result{Kind: KindNaN, Value: math.NaN()}
	case q > 1:
		return Result{Kind: KindAbove, Value: math.Inf(1)}
	case q < 0:
		return Result{Kind: KindBelow, Value: math.Inf(-1)}
	}
	if len(samples) == 0 {
		return Result{Kind: KindNone}
	}

	sorted := slices.Clone(samples)
	slices.Sort(sorted)

	n := len(sorted)
	rank := q * float64(n-1)
	index := int(math.Floor(rank))
	if index >= n-1 {
		return Result{Kind: KindValue, Value: sorted[n-1]}
	}

	lower, upper := sorted[index], sorted[index+1]
	fraction := rank - float64(index)
	return Result{Kind: KindValue, Value: lower + (upper-lower)*fraction}
}
