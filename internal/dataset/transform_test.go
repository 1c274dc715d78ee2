package dataset

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedgeanalytics/bis-widgets-go/internal/bis"
)

func logrusTestEntry() *logrus.Entry {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger.WithField("component", "test")
}

// oneSeriesMatrix builds a single-column matrix over consecutive quarters.
func oneSeriesMatrix(t *testing.T, values []string) *Matrix {
	t.Helper()
	labels := []string{"2020-Q1", "2020-Q2", "2020-Q3", "2020-Q4", "2021-Q1", "2021-Q2", "2021-Q3", "2021-Q4"}
	require.LessOrEqual(t, len(values), len(labels))

	var observations []bis.Observation
	for i, v := range values {
		if v == "" {
			observations = append(observations, obs(labels[i], "US", nil))
		} else {
			observations = append(observations, obs(labels[i], "US", dec(v)))
		}
	}

	m, err := Pivot(observations, nil)
	require.NoError(t, err)
	return m
}

func TestYoYExample(t *testing.T) {
	// Spec example: quarters 2020-Q1..2021-Q1 with values 100,102,104,103,110.
	m := oneSeriesMatrix(t, []string{"100", "102", "104", "103", "110"})

	out, units := ModeYoY.Apply(m, "USD bn")
	assert.Equal(t, "YoY % change", units)

	for r := 0; r < 4; r++ {
		assert.Nil(t, out.Cells[r][0], "row %d should be nil", r)
	}
	require.NotNil(t, out.Cells[4][0])
	assert.Equal(t, "0.1", out.Cells[4][0].String())
}

func TestYoYInsufficientHistory(t *testing.T) {
	m := oneSeriesMatrix(t, []string{"100", "102", "104", "103"})

	out := PercentChange(m, 4)
	for r := range out.Dates {
		assert.Nil(t, out.Cells[r][0])
	}
}

func TestQoQ(t *testing.T) {
	m := oneSeriesMatrix(t, []string{"100", "110", "99"})

	out := PercentChange(m, 1)
	assert.Nil(t, out.Cells[0][0])
	require.NotNil(t, out.Cells[1][0])
	assert.Equal(t, "0.1", out.Cells[1][0].String())
	require.NotNil(t, out.Cells[2][0])
	assert.Equal(t, "-0.1", out.Cells[2][0].String())
}

func TestPercentChangeNilPropagation(t *testing.T) {
	m := oneSeriesMatrix(t, []string{"100", "", "99"})

	out := PercentChange(m, 1)
	assert.Nil(t, out.Cells[1][0]) // current nil
	assert.Nil(t, out.Cells[2][0]) // previous nil
}

func TestPercentChangeZeroDivisor(t *testing.T) {
	m := oneSeriesMatrix(t, []string{"0", "5"})

	out := PercentChange(m, 1)
	assert.Nil(t, out.Cells[1][0])
}

func TestPercentChangeDoesNotMutateInput(t *testing.T) {
	m := oneSeriesMatrix(t, []string{"100", "110"})
	_ = PercentChange(m, 1)

	assert.Equal(t, "100", m.Cells[0][0].String())
	assert.Equal(t, "110", m.Cells[1][0].String())
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModeYoY, ParseMode("yoy"))
	assert.Equal(t, ModeYoY, ParseMode(" YoY "))
	assert.Equal(t, ModeQoQ, ParseMode("qoq"))
	assert.Equal(t, ModeTotal, ParseMode("total"))
	// Unknown modes fall through to total rather than erroring.
	assert.Equal(t, ModeTotal, ParseMode("monthly"))
	assert.Equal(t, ModeTotal, ParseMode(""))
}

func TestModeUnitsLabel(t *testing.T) {
	assert.Equal(t, "USD bn", ModeTotal.UnitsLabel("USD bn"))
	assert.Equal(t, "YoY % change", ModeYoY.UnitsLabel("USD bn"))
	assert.Equal(t, "QoQ % change", ModeQoQ.UnitsLabel("USD bn"))
}

func TestModeLagAndPercentFlag(t *testing.T) {
	assert.Equal(t, 0, ModeTotal.Lag())
	assert.Equal(t, 4, ModeYoY.Lag())
	assert.Equal(t, 1, ModeQoQ.Lag())
	assert.False(t, ModeTotal.IsPercentChange())
	assert.True(t, ModeYoY.IsPercentChange())
	assert.True(t, ModeQoQ.IsPercentChange())
}

func TestApplyTotalPassesThrough(t *testing.T) {
	m := oneSeriesMatrix(t, []string{"100", "110"})
	out, units := ModeTotal.Apply(m, "USD bn")
	assert.Same(t, m, out)
	assert.Equal(t, "USD bn", units)
}
