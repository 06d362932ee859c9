package handlers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/kosarica/price-comparator/internal/ingest"
)

var (
	ingester *ingest.Ingester
	// ingestMu allows one ingestion run at a time
	ingestMu sync.Mutex
)

// InitIngestion enables the ingestion endpoint.
func InitIngestion(i *ingest.Ingester) {
	ingester = i
}

// IngestRequest represents a request body for triggering ingestion
type IngestRequest struct {
	Prefix string `json:"prefix,omitempty"`
}

// TriggerIngestion loads price files from the data directory
// @Summary Ingest price files
// @Description Loads every recognized price and discount file under prefix. Runs synchronously; concurrent requests get 409.
// @Tags ingestion
// @Accept json
// @Produce json
// @Param request body IngestRequest false "Key prefix"
// @Success 200 {object} ingest.Summary
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/ingest [post]
func TriggerIngestion(c *gin.Context) {
	if ingester == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "ingestion is not configured"})
		return
	}

	var req IngestRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
	}

	if !ingestMu.TryLock() {
		c.JSON(http.StatusConflict, ErrorResponse{Error: "ingestion already running"})
		return
	}
	defer ingestMu.Unlock()

	summary, err := ingester.Run(c.Request.Context(), req.Prefix)
	if err != nil {
		log.Error().Err(err).Str("prefix", req.Prefix).Msg("Ingestion failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "ingestion failed"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
