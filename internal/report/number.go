// internal/report/number.go
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// FormatFloat prints v with the given number of decimals (-1 for the
// shortest exact form). Non-finite values print as NaN, +Inf and -Inf.
func FormatFloat(v float64, precision int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// Number is a statistic on the wire. Values are encoded as strings so
// that NaN and the infinities survive JSON; a missing value is null.
type Number struct {
	Value float64
	Valid bool
}

// Some wraps a present value.
func Some(v float64) Number {
	return Number{Value: v, Valid: true}
}

// From adapts the (value, ok) pairs returned by the stats package.
func From(v float64, ok bool) Number {
	return Number{Value: v, Valid: ok}
}

// Float64 returns the value and whether there is one.
func (n Number) Float64() (float64, bool) {
	return n.Value, n.Valid
}

func (n Number) String() string {
	if !n.Valid {
		return "-"
	}
	return FormatFloat(n.Value, -1)
}

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(FormatFloat(n.Value, -1))
}

// UnmarshalJSON accepts null, a JSON number, or a string such as "NaN" or "+Inf".
func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = Number{}
		return nil
	}
	var s string
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
	} else {
		s = string(b)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid number %s: %w", b, err)
	}
	*n = Some(v)
	return nil
}
