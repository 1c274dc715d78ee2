package bis

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedgeanalytics/bis-widgets-go/internal/config"
)

func newTestClient(baseURL string) *Client {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewClient(&config.BISConfig{
		BaseURL:  baseURL,
		Context:  "dataflow",
		AgencyID: "BIS",
		Version:  "+",
		Timeout:  5,
	}, logger)
}

func TestFetchSeriesSuccess(t *testing.T) {
	var gotPath, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write([]byte(sampleXML))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	body, err := client.FetchSeries(context.Background(), "WS_TC", "Q.US.N.A.M.USD.A")
	require.NoError(t, err)

	assert.Equal(t, "/dataflow/BIS/WS_TC/+/Q.US.N.A.M.USD.A", gotPath)
	assert.Equal(t, "application/xml", gotAccept)
	assert.Equal(t, sampleXML, body)
}

func TestFetchSeriesUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such dataflow", http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.FetchSeries(context.Background(), "WS_NOPE", "Q")
	require.Error(t, err)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
	assert.Contains(t, fetchErr.Message, "no such dataflow")
}

func TestFetchSeriesTransportFailure(t *testing.T) {
	// Point at a server that is already closed.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := newTestClient(server.URL)
	_, err := client.FetchSeries(context.Background(), "WS_TC", "Q")
	require.Error(t, err)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, 0, fetchErr.StatusCode)
}

func TestFetchSeriesContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	client := newTestClient(server.URL)
	_, err := client.FetchSeries(ctx, "WS_TC", "Q")
	require.Error(t, err)

	var fetchErr *FetchError
	assert.ErrorAs(t, err, &fetchErr)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	long := make([]byte, 600)
	for i := range long {
		long[i] = 'x'
	}
	out := truncate(string(long), 512)
	assert.Len(t, out, 515)
}
