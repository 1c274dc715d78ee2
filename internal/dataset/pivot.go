package dataset

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hedgeanalytics/bis-widgets-go/internal/bis"
)

// Matrix is a date-indexed, series-keyed value grid: rows are distinct dates
// in ascending order, columns are series keys in first-appearance order.
// Cells are nil where the source had no value. A Matrix is built once per
// request and only replaced, never mutated, by the percent-change transform.
type Matrix struct {
	Dates   []time.Time
	Columns []string
	Cells   [][]*decimal.Decimal
}

// Pivot reshapes observations into a Matrix, optionally keeping only dates
// on or after startDate (inclusive). Duplicate (date, series) pairs collapse
// latest-wins, matching how pivot operations resolve duplicates. An empty
// input or an empty post-filter result returns ErrNoData; a nonconforming
// period label fails the whole pivot with *DateParseError.
func Pivot(observations []bis.Observation, startDate *time.Time) (*Matrix, error) {
	if len(observations) == 0 {
		return nil, ErrNoData
	}

	type point struct {
		date  time.Time
		key   string
		value *decimal.Decimal
	}

	points := make([]point, 0, len(observations))
	for _, obs := range observations {
		date, err := ParsePeriod(obs.Period)
		if err != nil {
			return nil, err
		}
		if startDate != nil && date.Before(*startDate) {
			continue
		}
		points = append(points, point{date: date, key: obs.SeriesKey, value: obs.Value})
	}
	if len(points) == 0 {
		return nil, ErrNoData
	}

	dateIndex := make(map[time.Time]int)
	columnIndex := make(map[string]int)
	var dates []time.Time
	var columns []string
	for _, p := range points {
		if _, ok := dateIndex[p.date]; !ok {
			dateIndex[p.date] = 0
			dates = append(dates, p.date)
		}
		if _, ok := columnIndex[p.key]; !ok {
			columnIndex[p.key] = len(columns)
			columns = append(columns, p.key)
		}
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	for i, d := range dates {
		dateIndex[d] = i
	}

	cells := make([][]*decimal.Decimal, len(dates))
	for i := range cells {
		cells[i] = make([]*decimal.Decimal, len(columns))
	}
	for _, p := range points {
		cells[dateIndex[p.date]][columnIndex[p.key]] = p.value
	}

	return &Matrix{Dates: dates, Columns: columns, Cells: cells}, nil
}

// Column returns the values of column c in date order.
func (m *Matrix) Column(c int) []*decimal.Decimal {
	column := make([]*decimal.Decimal, len(m.Dates))
	for r := range m.Dates {
		column[r] = m.Cells[r][c]
	}
	return column
}
