package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hedgeanalytics/bis-widgets-go/internal/bis"
	"github.com/hedgeanalytics/bis-widgets-go/internal/chart"
	"github.com/hedgeanalytics/bis-widgets-go/internal/dataset"
	"github.com/hedgeanalytics/bis-widgets-go/internal/telemetry"
	"github.com/hedgeanalytics/bis-widgets-go/internal/widgets"
)

// Fetcher is the upstream dependency of the credit endpoints.
type Fetcher interface {
	// FetchSeries returns the raw XML payload for one dataflow/key selection.
	FetchSeries(ctx context.Context, resourceID, key string) (string, error)
}

// CreditHandler serves the credit table and chart widgets. Both endpoints
// share one fetch-and-parse pipeline; they differ only in the projection
// applied to the parsed observations.
type CreditHandler struct {
	fetcher  Fetcher
	renderer *chart.Renderer
	logger   *logrus.Entry
}

// NewCreditHandler creates a new instance of CreditHandler. The renderer may
// be nil when chart rendering is not configured; the chart endpoint then
// reports the capability as unavailable instead of degrading silently.
//
// Parameters:
//
//	fetcher: The BIS upstream client.
//	renderer: The figure renderer, or nil.
//	logger: The application logger.
//
// Returns:
//
//	*CreditHandler: The initialized handler.
func NewCreditHandler(fetcher Fetcher, renderer *chart.Renderer, logger *logrus.Logger) *CreditHandler {
	return &CreditHandler{
		fetcher:  fetcher,
		renderer: renderer,
		logger:   logger.WithField("component", "credit_handler"),
	}
}

// GetCreditTable handles GET /bis_credit_table: fetch, parse and project the
// observations into display rows.
func (h *CreditHandler) GetCreditTable(c *gin.Context) {
	resourceID := c.DefaultQuery("resource_id", widgets.DefaultResourceID)
	key := c.DefaultQuery("key", widgets.DefaultKey)

	observations, ok := h.fetchObservations(c, resourceID, key)
	if !ok {
		return
	}

	rows := dataset.ProjectRows(observations, h.logger)
	if len(rows) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No data returned from BIS."})
		return
	}

	c.JSON(http.StatusOK, rows)
}

// GetCreditChart handles GET /bis_credit_chart: fetch, parse, pivot,
// optionally transform and render the observations as a figure description.
func (h *CreditHandler) GetCreditChart(c *gin.Context) {
	resourceID := c.DefaultQuery("resource_id", widgets.DefaultResourceID)
	key := c.DefaultQuery("key", widgets.DefaultKey)
	units := c.DefaultQuery("units", widgets.DefaultUnits)
	themeName := c.DefaultQuery("theme", "light")
	mode := dataset.ParseMode(c.DefaultQuery("mode", "total"))
	kind, percentKind := chart.ParseKind(c.DefaultQuery("chart", "line"))

	var startDate *time.Time
	if raw := c.Query("startdate"); raw != "" {
		parsed, err := dataset.ParseStartDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid startdate: %v", err)})
			return
		}
		startDate = &parsed
	}

	if h.renderer == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Chart rendering is not available on this deployment."})
		return
	}

	observations, ok := h.fetchObservations(c, resourceID, key)
	if !ok {
		return
	}

	matrix, err := dataset.Pivot(observations, startDate)
	if err != nil {
		h.writeError(c, err)
		return
	}

	matrix, units = mode.Apply(matrix, units)

	figure := h.renderer.Render(matrix, chart.Options{
		Title:       "BIS Data",
		Units:       units,
		Theme:       themeName,
		Kind:        kind,
		PercentAxis: percentKind || mode.IsPercentChange(),
	})

	c.JSON(http.StatusOK, figure)
}

// fetchObservations runs the shared fetch-and-parse pipeline. On failure it
// writes the error response and reports ok=false.
func (h *CreditHandler) fetchObservations(c *gin.Context, resourceID, key string) ([]bis.Observation, bool) {
	ctx, span := telemetry.PipelineTracer().Start(c.Request.Context(), "credit.pipeline")
	defer span.End()

	xmlText, err := h.fetcher.FetchSeries(ctx, resourceID, key)
	if err != nil {
		h.writeError(c, err)
		return nil, false
	}

	observations, err := bis.ParseObservations(xmlText)
	if err != nil {
		h.writeError(c, err)
		return nil, false
	}

	return observations, true
}

// writeError maps pipeline errors to HTTP responses: upstream failures are
// gateway errors, contract breaks are internal, an empty result is not found.
func (h *CreditHandler) writeError(c *gin.Context, err error) {
	var fetchErr *bis.FetchError
	var parseErr *bis.ParseError
	var dateErr *dataset.DateParseError

	switch {
	case errors.As(err, &fetchErr):
		h.logger.WithError(err).Error("Upstream fetch failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": fmt.Sprintf("Error fetching BIS series: %s", fetchErr.Message)})
	case errors.As(err, &parseErr):
		h.logger.WithError(err).Error("Upstream payload unparsable")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	case errors.As(err, &dateErr):
		h.logger.WithError(err).Error("Upstream period label unparsable")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	case errors.Is(err, dataset.ErrNoData):
		c.JSON(http.StatusNotFound, gin.H{"error": "No data returned from BIS."})
	default:
		h.logger.WithError(err).Error("Unexpected pipeline failure")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
