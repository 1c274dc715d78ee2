package bis

import "github.com/shopspring/decimal"

// UnknownSeriesKey is substituted when a Series element carries no
// identifying attribute.
const UnknownSeriesKey = "Unknown"

// Observation is one leaf data point from an SDMX payload. Observations are
// immutable once produced and kept in document order.
type Observation struct {
	// Period is the raw period label, e.g. "2020-Q1".
	Period string
	// SeriesKey identifies the observation stream, normally a country code.
	SeriesKey string
	// Value is nil when the source attribute is absent, empty or non-numeric.
	Value *decimal.Decimal
}
