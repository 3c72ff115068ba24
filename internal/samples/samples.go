// internal/samples/samples.go

// Package samples holds the series data model shared by the aggregation,
// reporting and transport layers, and reads it from JSON series files.
package samples

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cast"
)

// ErrNoSeries is returned when a series file decodes but holds no series.
var ErrNoSeries = errors.New("no series in input")

// Series is a labelled sample sequence as extracted by the query evaluator.
type Series struct {
	// Metric is the metric name, e.g. "http_request_duration_seconds".
	Metric string `json:"metric"`
	// Labels identify the series within its metric.
	Labels map[string]string `json:"labels,omitempty"`
	// Samples are the extracted values, oldest first.
	Samples []float64 `json:"samples"`
}

// File is the on-disk layout of a series file.
type File struct {
	Series []Series `json:"series"`
}

// Name renders the series as metric{k="v",...} with label keys sorted.
func (s Series) Name() string {
	return s.Metric + LabelString(s.Labels)
}

// Latest returns the newest sample and whether the series has one.
func (s Series) Latest() (float64, bool) {
	if len(s.Samples) == 0 {
		return 0, false
	}
	return s.Samples[len(s.Samples)-1], true
}

// LabelString renders labels as {k="v",...} in key order, or "{}" when empty.
func LabelString(labels map[string]string) string {
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%s=%q", k, labels[k])
	}
	b.WriteByte('}')
	return b.String()
}

// Load reads and decodes the series file at path.
func Load(path string) ([]Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open series file: %w", err)
	}
	defer f.Close()

	series, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return series, nil
}

// Decode reads a series file from r.
func Decode(r io.Reader) ([]Series, error) {
	var file File
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("could not parse series JSON: %w", err)
	}
	if len(file.Series) == 0 {
		return nil, ErrNoSeries
	}
	return file.Series, nil
}

// ParseValue coerces a single command-line or request value to float64.
func ParseValue(s string) (float64, error) {
	v, err := cast.ToFloat64E(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid sample value %q: %w", s, err)
	}
	return v, nil
}

// ParseValues coerces every argument, failing on the first one that is not a number.
func ParseValues(args []string) ([]float64, error) {
	values := make([]float64, 0, len(args))
	for _, a := range args {
		v, err := ParseValue(a)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
