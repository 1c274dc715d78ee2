package dataset

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/hedgeanalytics/bis-widgets-go/internal/bis"
)

// CreditRow is the display row served by the table endpoint. Field names
// match the column headers the dashboard host renders.
type CreditRow struct {
	Date    string           `json:"Date"`
	Country string           `json:"Country"`
	Value   *decimal.Decimal `json:"Value"`
}

// ProjectRows maps observations into display rows, preserving parse order.
// Rows missing the period label or series key are skipped with a diagnostic
// log instead of failing the response; partial delivery beats total failure
// for display purposes.
func ProjectRows(observations []bis.Observation, logger *logrus.Entry) []CreditRow {
	rows := make([]CreditRow, 0, len(observations))
	for _, obs := range observations {
		if obs.Period == "" || obs.SeriesKey == "" {
			logger.WithFields(logrus.Fields{
				"period":     obs.Period,
				"series_key": obs.SeriesKey,
			}).Debug("Skipping observation with missing fields")
			continue
		}
		rows = append(rows, CreditRow{
			Date:    obs.Period,
			Country: obs.SeriesKey,
			Value:   obs.Value,
		})
	}
	return rows
}
