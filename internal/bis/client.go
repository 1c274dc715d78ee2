package bis

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/hedgeanalytics/bis-widgets-go/internal/config"
	"github.com/hedgeanalytics/bis-widgets-go/internal/telemetry"
)

// Client fetches SDMX payloads from the BIS statistics API. One request per
// call, no retry and no backoff: a human is waiting on the dashboard, so the
// fetch fails fast and the bounded timeout keeps it from blocking.
type Client struct {
	httpClient *http.Client
	baseURL    string
	context    string
	agencyID   string
	version    string
	logger     *logrus.Entry
}

// NewClient creates a BIS API client from configuration.
//
// Parameters:
//
//	cfg: BIS upstream configuration.
//	logger: Application logger; the client scopes it to its own component.
//
// Returns:
//
//	*Client: Initialized client.
func NewClient(cfg *config.BISConfig, logger *logrus.Logger) *Client {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout == 0 {
		timeout = 20 * time.Second
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		context:    cfg.Context,
		agencyID:   cfg.AgencyID,
		version:    cfg.Version,
		logger:     logger.WithField("component", "bis_client"),
	}
}

// FetchSeries issues a GET for one dataflow/key selection and returns the
// raw XML body. Transport failures and non-2xx statuses are both surfaced
// as *FetchError.
//
// Parameters:
//
//	ctx: Request context; cancellation aborts the upstream call.
//	resourceID: Dataflow resource, e.g. "WS_TC".
//	key: SDMX key filter expression, e.g. "Q.US.N.A.M.USD.A".
//
// Returns:
//
//	string: Raw XML payload.
//	error: *FetchError on any upstream failure.
func (c *Client) FetchSeries(ctx context.Context, resourceID, key string) (string, error) {
	ctx, span := telemetry.PipelineTracer().Start(ctx, "bis.fetch")
	defer span.End()
	span.SetAttributes(
		attribute.String("bis.resource_id", resourceID),
		attribute.String("bis.key", key),
	)

	url := fmt.Sprintf("%s/%s/%s/%s/%s/%s", c.baseURL, c.context, c.agencyID, resourceID, c.version, key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &FetchError{Message: fmt.Sprintf("failed to create request: %v", err)}
	}
	req.Header.Set("Accept", "application/xml")
	req.Header.Set("User-Agent", "bis-widgets-go/1.0")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithError(err).Error("BIS request failed")
		return "", &FetchError{Message: err.Error()}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.WithError(err).Warn("Error closing response body")
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("failed to read response body: %v", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.WithFields(logrus.Fields{
			"status":      resp.StatusCode,
			"resource_id": resourceID,
		}).Error("BIS returned non-2xx status")
		return "", &FetchError{StatusCode: resp.StatusCode, Message: truncate(string(body), 512)}
	}

	c.logger.WithFields(logrus.Fields{
		"resource_id": resourceID,
		"key":         key,
		"bytes":       len(body),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("Fetched BIS series")

	return string(body), nil
}

// BaseURL returns the configured base URL of the BIS API.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// truncate bounds upstream error bodies before they are embedded in errors.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
