package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/sirupsen/logrus"
)

// HealthHandler reports process liveness and basic host statistics.
type HealthHandler struct {
	startTime time.Time
	logger    *logrus.Entry
}

// NewHealthHandler creates a new instance of HealthHandler.
func NewHealthHandler(logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{
		startTime: time.Now(),
		logger:    logger.WithField("component", "health_handler"),
	}
}

// GetRoot handles GET /. The dashboard host probes this to confirm the
// backend is reachable before loading widget metadata.
func (h *HealthHandler) GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"info": "BIS credit data backend"})
}

// GetHealth handles GET /health with process and host details.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	response := gin.H{
		"status":     "healthy",
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
		"uptime":     time.Since(h.startTime).String(),
		"goroutines": runtime.NumGoroutine(),
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		response["memory_used_percent"] = vm.UsedPercent
	} else {
		h.logger.WithError(err).Debug("Memory stats unavailable")
	}
	if counts, err := cpu.Counts(true); err == nil {
		response["cpu_count"] = counts
	}

	c.JSON(http.StatusOK, response)
}
