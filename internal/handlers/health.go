package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kosarica/price-comparator/internal/database"
)

const healthPingTimeout = 2 * time.Second

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	// Connections is the number of open pool connections when a database is configured
	Connections *int32 `json:"connections,omitempty"`
}

// HealthCheck reports "ok", or "degraded" with 503 when the configured
// database does not answer. The in-memory catalog is always healthy.
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	stats := database.Stats()
	if stats == nil {
		c.JSON(http.StatusOK, HealthResponse{Status: "ok", Database: "not configured"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
	defer cancel()

	open := stats.TotalConns()
	if err := database.Status(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "degraded", Database: "disconnected", Connections: &open})
		return
	}
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Database: "connected", Connections: &open})
}
