// internal/samples/samples_test.go
package samples

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	// Test case 1: valid file
	valid := `{
		"series": [
			{"metric": "up", "labels": {"job": "api", "instance": "a:9100"}, "samples": [1, 0, 1]},
			{"metric": "up", "samples": []}
		]
	}`
	path := filepath.Join(dir, "series.json")
	if err := os.WriteFile(path, []byte(valid), 0o644); err != nil {
		t.Fatal(err)
	}
	series, err := Load(path)
	if err != nil {
		t.Fatalf("Load() with valid file failed: %v", err)
	}
	if len(series) != 2 || len(series[0].Samples) != 3 || series[0].Labels["job"] != "api" {
		t.Fatalf("unexpected series: %+v", series)
	}

	// Test case 2: invalid JSON
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{ "series": [`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() with invalid JSON should have failed, but it didn't")
	}

	// Test case 3: no series
	empty := filepath.Join(dir, "empty.json")
	if err := os.WriteFile(empty, []byte(`{"series": []}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(empty); !errors.Is(err, ErrNoSeries) {
		t.Errorf("expected ErrNoSeries, got %v", err)
	}

	// Test case 4: file not found
	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("Load() with nonexistent file should have failed, but it didn't")
	}
}

func TestDecode_Reader(t *testing.T) {
	series, err := Decode(strings.NewReader(`{"series":[{"metric":"m","samples":[2.5]}]}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if v, ok := series[0].Latest(); !ok || v != 2.5 {
		t.Fatalf("Latest = %v, %v", v, ok)
	}
}

func TestSeries_Name(t *testing.T) {
	s := Series{Metric: "up", Labels: map[string]string{"job": "api", "instance": "a"}}
	if got, want := s.Name(), `up{instance="a",job="api"}`; got != want {
		t.Fatalf("Name() = %s; want %s", got, want)
	}
	if got := (Series{Metric: "x"}).Name(); got != "x{}" {
		t.Fatalf("Name() without labels = %s", got)
	}
	if _, ok := (Series{}).Latest(); ok {
		t.Fatalf("Latest on empty series reported a value")
	}
}

func TestParseValues(t *testing.T) {
	got, err := ParseValues([]string{"1", " 2.5", "-3e2"})
	if err != nil {
		t.Fatalf("ParseValues: %v", err)
	}
	want := []float64{1, 2.5, -300}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ParseValues = %v; want %v", got, want)
		}
	}

	_, err = ParseValues([]string{"1", "abc"})
	if err == nil || !strings.Contains(err.Error(), `"abc"`) {
		t.Fatalf("expected error naming abc, got %v", err)
	}
}
