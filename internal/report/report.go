// internal/report/report.go

// Package report renders summaries and aggregation rows for terminals
// (lipgloss), machines (JSON) and debugging (pp).
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/k0kubun/pp"

	"github.com/mwiater/promstats/internal/aggregate"
	"github.com/mwiater/promstats/internal/samples"
	"github.com/mwiater/promstats/internal/stats"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	nameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	absentStyle = lipgloss.NewStyle().Faint(true)
)

// QuantileDoc is the wire form of a quantile result.
type QuantileDoc struct {
	Q     Number `json:"q"`
	Kind  string `json:"kind"`
	Value Number `json:"value"`
}

// SummaryDoc is the wire form of aggregate.Summary.
type SummaryDoc struct {
	Name      string        `json:"name"`
	Count     int           `json:"count"`
	Mean      Number        `json:"mean"`
	Variance  Number        `json:"variance"`
	StdDev    Number        `json:"stddev"`
	Min       Number        `json:"min"`
	Max       Number        `json:"max"`
	Quantiles []QuantileDoc `json:"quantiles"`
}

// RowDoc is the wire form of aggregate.Row.
type RowDoc struct {
	Labels map[string]string `json:"labels"`
	Value  Number            `json:"value"`
	// Kind is only set for quantile rows.
	Kind string `json:"kind,omitempty"`
}

// NewQuantileDoc converts a stats.Result for the wire.
func NewQuantileDoc(q float64, r stats.Result) QuantileDoc {
	return QuantileDoc{Q: Some(q), Kind: r.Kind.String(), Value: From(r.Float64())}
}

// NewSummaryDoc converts a summary for the wire.
func NewSummaryDoc(s aggregate.Summary) SummaryDoc {
	doc := SummaryDoc{
		Name:      s.Name,
		Count:     s.Count,
		Mean:      From(s.Mean.Value, s.Mean.Valid),
		Variance:  From(s.Variance.Value, s.Variance.Valid),
		StdDev:    From(s.StdDev.Value, s.StdDev.Valid),
		Min:       From(s.Min.Value, s.Min.Valid),
		Max:       From(s.Max.Value, s.Max.Valid),
		Quantiles: make([]QuantileDoc, len(s.Quantiles)),
	}
	for i, p := range s.Quantiles {
		doc.Quantiles[i] = NewQuantileDoc(p.Q, p.Result)
	}
	return doc
}

// NewRowDocs converts aggregation rows for the wire.
func NewRowDocs(rows []aggregate.Row) []RowDoc {
	docs := make([]RowDoc, len(rows))
	for i, r := range rows {
		docs[i] = RowDoc{Labels: r.Labels, Value: Some(r.Value)}
		if r.Kind != stats.KindNone {
			docs[i].Kind = r.Kind.String()
		}
	}
	return docs
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Debug pretty-prints v with pp.
func Debug(w io.Writer, v any) {
	pp.Fprintln(w, v)
}

// SummaryTable writes one line per summary with the moments and the
// configured quantiles as columns.
func SummaryTable(w io.Writer, summaries []aggregate.Summary, precision int) error {
	header := []string{"SERIES", "COUNT", "MEAN", "STDDEV", "VARIANCE", "MIN", "MAX"}
	if len(summaries) > 0 {
		for _, p := range summaries[0].Quantiles {
			header = append(header, "Q"+FormatFloat(p.Q, -1))
		}
	}

	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		row := []string{
			s.Name,
			fmt.Sprint(s.Count),
			formatOptional(s.Mean, precision),
			formatOptional(s.StdDev, precision),
			formatOptional(s.Variance, precision),
			formatOptional(s.Min, precision),
			formatOptional(s.Max, precision),
		}
		for _, p := range s.Quantiles {
			row = append(row, formatResult(p.Result, precision))
		}
		rows = append(rows, row)
	}
	return writeTable(w, header, rows)
}

// RowsTable writes aggregation rows as LABELS / VALUE.
func RowsTable(w io.Writer, rows []aggregate.Row, precision int) error {
	lines := make([][]string, len(rows))
	for i, r := range rows {
		lines[i] = []string{samples.LabelString(r.Labels), FormatFloat(r.Value, precision)}
	}
	return writeTable(w, []string{"LABELS", "VALUE"}, lines)
}

func formatOptional(o aggregate.Optional, precision int) string {
	if !o.Valid {
		return absentStyle.Render("-")
	}
	return FormatFloat(o.Value, precision)
}

func formatResult(r stats.Result, precision int) string {
	v, ok := r.Float64()
	if !ok {
		return absentStyle.Render("-")
	}
	return FormatFloat(v, precision)
}

func writeTable(w io.Writer, header []string, rows [][]string) error {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var b strings.Builder
	for i, h := range header {
		b.WriteString(headerStyle.Render(pad(h, widths[i])))
		if i < len(header)-1 {
			b.WriteString("  ")
		}
	}
	b.WriteString("\n")
	for _, row := range rows {
		for i, cell := range row {
			if i == 0 {
				cell = nameStyle.Render(cell)
			}
			b.WriteString(pad(cell, widths[i]))
			if i < len(row)-1 {
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func pad(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
