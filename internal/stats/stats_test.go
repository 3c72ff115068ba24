// internal/stats/stats_test.go
package stats

import (
	"math"
	"slices"
	"testing"

	mstats "github.com/montanaflynn/stats"
)

func TestMean(t *testing.T) {
	cases := []struct {
		name    string
		samples []float64
		want    float64
		ok      bool
	}{
		{"empty", nil, 0, false},
		{"single", []float64{7}, 7, true},
		{"four", []float64{1, 2, 3, 4}, 2.5, true},
		{"negative", []float64{-3, 3, -6}, -2, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Mean(tc.samples)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("Mean(%v) = %v, %v; want %v, %v", tc.samples, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestMean_OrderIndependentUpToRounding(t *testing.T) {
	samples := []float64{0.1, 1e9, 0.2, -1e9, 0.3, 17.25}
	reversed := slices.Clone(samples)
	slices.Reverse(reversed)

	a, _ := Mean(samples)
	b, _ := Mean(reversed)
	if math.Abs(a-b) > 1e-6 {
		t.Fatalf("means differ beyond rounding: %v vs %v", a, b)
	}
}

func TestVarianceAndStdDeviation(t *testing.T) {
	samples := []float64{1, 2, 3, 4}

	variance, ok := Variance(samples)
	if !ok || variance != 1.25 {
		t.Fatalf("Variance = %v, %v; want 1.25, true", variance, ok)
	}
	std, ok := StdDeviation(samples)
	if !ok || std != math.Sqrt(1.25) {
		t.Fatalf("StdDeviation = %v, %v; want %v", std, ok, math.Sqrt(1.25))
	}
	if math.Abs(std-1.1180339887) > 1e-10 {
		t.Fatalf("StdDeviation = %v; want ~1.1180339887", std)
	}
}

func TestVariance_EmptyHasNoValue(t *testing.T) {
	if v, ok := Variance(nil); ok {
		t.Fatalf("Variance(nil) = %v, true; want no value", v)
	}
	if v, ok := StdDeviation([]float64{}); ok {
		t.Fatalf("StdDeviation([]) = %v, true; want no value", v)
	}
}

func TestVariance_MatchesPopulationOracle(t *testing.T) {
	sets := [][]float64{
		{5},
		{2, 4, 4, 4, 5, 5, 7, 9},
		{0.5, -1.25, 3.75, 12, -7.5, 0},
		{1e3, 1e3 + 1, 1e3 + 2},
	}
	for _, s := range sets {
		wantMean, err := mstats.Mean(s)
		if err != nil {
			t.Fatalf("oracle mean: %v", err)
		}
		wantVar, err := mstats.PopulationVariance(s)
		if err != nil {
			t.Fatalf("oracle variance: %v", err)
		}

		mean, _ := Mean(s)
		variance, ok := Variance(s)
		if !ok {
			t.Fatalf("Variance(%v) has no value", s)
		}
		if math.Abs(mean-wantMean) > 1e-9 {
			t.Errorf("Mean(%v) = %v; oracle %v", s, mean, wantMean)
		}
		if math.Abs(variance-wantVar) > 1e-9 {
			t.Errorf("Variance(%v) = %v; oracle %v", s, variance, wantVar)
		}
		if variance < 0 {
			t.Errorf("Variance(%v) negative: %v", s, variance)
		}
		std, _ := StdDeviation(s)
		if std != math.Sqrt(variance) {
			t.Errorf("StdDeviation(%v) = %v; want sqrt(%v)", s, std, variance)
		}
	}
}

func TestVarianceWithMean(t *testing.T) {
	samples := []float64{1, 2, 3, 4}

	t.Run("count guards but length divides", func(t *testing.T) {
		got, ok := VarianceWithMean(samples, 2.5, 10)
		if !ok || got != 1.25 {
			t.Fatalf("VarianceWithMean = %v, %v; want 1.25, true", got, ok)
		}
	})

	t.Run("non-positive count", func(t *testing.T) {
		for _, count := range []int64{0, -1} {
			if v, ok := VarianceWithMean(samples, 2.5, count); ok {
				t.Fatalf("count %d: got %v, true; want no value", count, v)
			}
			if v, ok := StdDeviationWithMean(samples, 2.5, count); ok {
				t.Fatalf("count %d: std got %v, true; want no value", count, v)
			}
		}
	})

	t.Run("external mean is used as given", func(t *testing.T) {
		// deviations from 0: 1+4+9+16 = 30, over 4 samples
		got, ok := VarianceWithMean(samples, 0, 4)
		if !ok || got != 7.5 {
			t.Fatalf("VarianceWithMean around 0 = %v, %v; want 7.5", got, ok)
		}
	})

	t.Run("empty samples with positive count", func(t *testing.T) {
		got, ok := VarianceWithMean(nil, 1, 3)
		if !ok || !math.IsNaN(got) {
			t.Fatalf("VarianceWithMean(nil) = %v, %v; want NaN, true", got, ok)
		}
	})

	t.Run("std matches sqrt", func(t *testing.T) {
		std, ok := StdDeviationWithMean(samples, 2.5, 4)
		if !ok || std != math.Sqrt(1.25) {
			t.Fatalf("StdDeviationWithMean = %v, %v", std, ok)
		}
	})
}

func TestFunctionsDoNotMutateInput(t *testing.T) {
	samples := []float64{3, 1, 2}
	orig := slices.Clone(samples)

	Mean(samples)
	Variance(samples)
	StdDeviationWithMean(samples, 2, 3)
	Quantile(samples, 0.5)

	if !slices.Equal(samples, orig) {
		t.Fatalf("input mutated: %v, want %v", samples, orig)
	}
}
