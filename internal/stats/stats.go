// internal/stats/stats.go

// Package stats computes descriptive statistics over sample sequences
// extracted during query evaluation. Every function is pure: the caller's
// slice is never reordered or retained.
//
// Functions in the mean/variance family report absence with a false second
// return value. Quantile reports absence and out-of-domain requests through
// a tagged Result.
package stats

import "math"

// Mean returns the arithmetic mean of samples. Samples are summed in the
// order given, so permutations of the same values may differ by rounding.
// It returns false when samples is empty.
func Mean(samples []float64) (float64, bool) {
	if len(samples) == 0 {
		return 0, false
	}
	var sum float64
	for _, v := range samples {
		sum += v
	}
	return sum / float64(len(samples)), true
}

// Variance returns the population variance of samples (divisor n, not n-1).
// It returns false when samples is empty.
//
// VarianceWithMean is the same computation for callers that already hold
// the mean, for example from a running aggregate.
func Variance(samples []float64) (float64, bool) {
	mean, ok := Mean(samples)
	if !ok {
		return 0, false
	}
	return sumSquaredDiff(samples, mean) / float64(len(samples)), true
}

// VarianceWithMean returns the population variance of samples around a
// precomputed mean. count only guards validity: it returns false when
// count <= 0. The divisor is always len(samples).
func VarianceWithMean(samples []float64, mean float64, count int64) (float64, bool) {
	if count <= 0 {
		return 0, false
	}
	return sumSquaredDiff(samples, mean) / float64(len(samples)), true
}

// StdDeviation returns the square root of Variance.
func StdDeviation(samples []float64) (float64, bool) {
	variance, ok := Variance(samples)
	if !ok {
		return 0, false
	}
	return math.Sqrt(variance), true
}

// StdDeviationWithMean returns the square root of VarianceWithMean.
func StdDeviationWithMean(samples []float64, mean float64, count int64) (float64, bool) {
	variance, ok := VarianceWithMean(samples, mean, count)
	if !ok {
		return 0, false
	}
	return math.Sqrt(variance), true
}

func sumSquaredDiff(samples []float64, mean float64) float64 {
	var sum float64
	for _, v := range samples {
		d := mean - v
		sum += d * d
	}
	return sum
}
