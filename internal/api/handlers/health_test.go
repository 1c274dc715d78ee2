package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedgeanalytics/bis-widgets-go/internal/widgets"
)

func TestGetRoot(t *testing.T) {
	handler := NewHealthHandler(testLogger())
	recorder := performRequest(handler.GetRoot, "/", "/")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "BIS credit data backend")
}

func TestGetHealth(t *testing.T) {
	handler := NewHealthHandler(testLogger())
	recorder := performRequest(handler.GetHealth, "/health", "/health")

	require.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Contains(t, body, "timestamp")
	assert.Contains(t, body, "uptime")
}

func TestGetWidgets(t *testing.T) {
	handler := NewWidgetsHandler(widgets.NewRegistry())
	recorder := performRequest(handler.GetWidgets, "/widgets.json", "/widgets.json")

	require.Equal(t, http.StatusOK, recorder.Code)

	var registry map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &registry))
	require.Contains(t, registry, "bis_credit_table")
	require.Contains(t, registry, "bis_credit_chart")
	assert.Equal(t, "bis_credit_chart", registry["bis_credit_chart"]["endpoint"])
}
