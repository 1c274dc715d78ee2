package dataset

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Mode selects the optional percent-change transform applied to a pivoted
// matrix before rendering.
type Mode string

const (
	// ModeTotal renders levels as-is.
	ModeTotal Mode = "total"
	// ModeYoY renders year-over-year percent change (4-quarter lag).
	ModeYoY Mode = "yoy"
	// ModeQoQ renders quarter-over-quarter percent change (1-quarter lag).
	ModeQoQ Mode = "qoq"
)

// ParseMode maps the query parameter to a Mode. Anything other than
// "yoy"/"qoq" falls through to total; the permissive default is deliberate
// and matches the behavior dashboards already rely on.
func ParseMode(value string) Mode {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case string(ModeYoY):
		return ModeYoY
	case string(ModeQoQ):
		return ModeQoQ
	default:
		return ModeTotal
	}
}

// Lag returns the fixed period lag of the transform, 0 for total.
func (m Mode) Lag() int {
	switch m {
	case ModeYoY:
		return 4
	case ModeQoQ:
		return 1
	default:
		return 0
	}
}

// UnitsLabel returns the axis label for the transformed values. Total keeps
// the caller-supplied units; the change modes overwrite it.
func (m Mode) UnitsLabel(fallback string) string {
	switch m {
	case ModeYoY:
		return "YoY % change"
	case ModeQoQ:
		return "QoQ % change"
	default:
		return fallback
	}
}

// IsPercentChange reports whether the mode renders ratios rather than levels.
func (m Mode) IsPercentChange() bool {
	return m == ModeYoY || m == ModeQoQ
}

// Apply runs the transform, returning the (possibly replaced) matrix and the
// effective units label.
func (m Mode) Apply(matrix *Matrix, units string) (*Matrix, string) {
	if lag := m.Lag(); lag > 0 {
		return PercentChange(matrix, lag), m.UnitsLabel(units)
	}
	return matrix, m.UnitsLabel(units)
}

// PercentChange derives a new matrix of fixed-lag ratios:
// out[i] = in[i]/in[i-periods] - 1. The first `periods` rows have no history
// and stay nil; that is expected, not an error. A nil operand propagates nil,
// and a zero divisor yields nil rather than an unrepresentable infinity.
func PercentChange(matrix *Matrix, periods int) *Matrix {
	one := decimal.NewFromInt(1)

	cells := make([][]*decimal.Decimal, len(matrix.Dates))
	for r := range matrix.Dates {
		cells[r] = make([]*decimal.Decimal, len(matrix.Columns))
		if r < periods {
			continue
		}
		for c := range matrix.Columns {
			current := matrix.Cells[r][c]
			previous := matrix.Cells[r-periods][c]
			if current == nil || previous == nil || previous.IsZero() {
				continue
			}
			change := current.Div(*previous).Sub(one)
			cells[r][c] = &change
		}
	}

	return &Matrix{
		Dates:   append([]time.Time(nil), matrix.Dates...),
		Columns: append([]string(nil), matrix.Columns...),
		Cells:   cells,
	}
}
