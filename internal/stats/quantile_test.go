// internal/stats/quantile_test.go
package stats

import (
	"math"
	"sync"
	"testing"
)

func TestQuantile_Interpolation(t *testing.T) {
	cases := []struct {
		name    string
		samples []float64
		q       float64
		want    float64
	}{
		{"median of five", []float64{4, 2, 1, 3, 5}, 0.5, 3},
		{"lower quartile of four", []float64{1, 2, 3, 4}, 0.25, 1.75},
		{"median of four", []float64{4, 3, 2, 1}, 0.5, 2.5},
		{"min", []float64{9, -2, 5}, 0, -2},
		{"max", []float64{9, -2, 5}, 1, 9},
		{"single at zero", []float64{10}, 0, 10},
		{"single at one", []float64{10}, 1, 10},
		{"duplicates", []float64{2, 2, 2, 8}, 0.5, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Quantile(tc.samples, tc.q)
			if got.Kind != KindValue || got.Value != tc.want {
				t.Fatalf("Quantile(%v, %v) = %+v; want %v", tc.samples, tc.q, got, tc.want)
			}
		})
	}
}

func TestQuantile_SentinelsWinOverEmptiness(t *testing.T) {
	for _, samples := range [][]float64{nil, {1, 2, 3}} {
		if r := Quantile(samples, 2.0); r.Kind != KindAbove || !math.IsInf(r.Value, 1) {
			t.Errorf("Quantile(%v, 2) = %+v; want +Inf", samples, r)
		}
		if r := Quantile(samples, -0.5); r.Kind != KindBelow || !math.IsInf(r.Value, -1) {
			t.Errorf("Quantile(%v, -0.5) = %+v; want -Inf", samples, r)
		}
		if r := Quantile(samples, math.NaN()); r.Kind != KindNaN || !math.IsNaN(r.Value) {
			t.Errorf("Quantile(%v, NaN) = %+v; want NaN", samples, r)
		}
		if r := Quantile(samples, math.Inf(1)); r.Kind != KindAbove {
			t.Errorf("Quantile(%v, +Inf) = %+v; want KindAbove", samples, r)
		}
	}
}

func TestQuantile_EmptyHasNoValue(t *testing.T) {
	for _, q := range []float64{0, 0.5, 1} {
		r := Quantile(nil, q)
		if r.Kind != KindNone {
			t.Fatalf("Quantile(nil, %v) = %+v; want no value", q, r)
		}
		if _, ok := r.Float64(); ok {
			t.Fatalf("Float64 reported a value for KindNone")
		}
	}
}

func TestQuantile_Monotonic(t *testing.T) {
	samples := []float64{13, -4.5, 0, 2.25, 99, 7, 7, -30}
	prev := math.Inf(-1)
	for i := 0; i <= 100; i++ {
		q := float64(i) / 100
		v, ok := Quantile(samples, q).Float64()
		if !ok {
			t.Fatalf("no value at q=%v", q)
		}
		if v < prev {
			t.Fatalf("quantile decreased at q=%v: %v < %v", q, v, prev)
		}
		prev = v
	}
}

func TestQuantile_NaNSamplesSortFirst(t *testing.T) {
	samples := []float64{2, math.NaN(), 1}
	if r := Quantile(samples, 1); r.Value != 2 {
		t.Fatalf("Quantile(.., 1) = %+v; want 2", r)
	}
	if r := Quantile(samples, 0); !math.IsNaN(r.Value) || r.Kind != KindValue {
		t.Fatalf("Quantile(.., 0) = %+v; want NaN value", r)
	}
}

func TestQuantile_Concurrent(t *testing.T) {
	samples := []float64{5, 1, 4, 2, 3}
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if r := Quantile(samples, 0.5); r.Value != 3 {
				t.Errorf("concurrent Quantile = %+v", r)
			}
		}()
	}
	wg.Wait()
}

func TestResult_String(t *testing.T) {
	cases := []struct {
		r    Result
		want string
	}{
		{Result{Kind: KindNone}, "no value"},
		{Result{Kind: KindValue, Value: 1.5}, "1.5"},
		{Result{Kind: KindNaN, Value: math.NaN()}, "NaN"},
		{Result{Kind: KindAbove, Value: math.Inf(1)}, "+Inf"},
		{Result{Kind: KindBelow, Value: math.Inf(-1)}, "-Inf"},
	}
	for _, tc := range cases {
		if got := tc.r.String(); got != tc.want {
			t.Errorf("%+v.String() = %q; want %q", tc.r, got, tc.want)
		}
	}
	if KindAbove.String() != "above" || Kind(42).String() != "kind(42)" {
		t.Errorf("unexpected Kind names: %s %s", KindAbove, Kind(42))
	}
}
