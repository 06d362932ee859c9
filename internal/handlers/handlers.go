// Package handlers exposes the price analysis engine over HTTP.
package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/kosarica/price-comparator/internal/analysis"
	"github.com/kosarica/price-comparator/internal/catalog"
)

// Engine instances (initialized by the application)
var (
	analyzer     *analysis.Analyzer
	alertService *analysis.AlertService
)

// Init wires the handlers to the engine.
// This should be called during application startup
func Init(a *analysis.Analyzer, alerts *analysis.AlertService) {
	analyzer = a
	alertService = alerts
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps engine errors to status codes.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, analysis.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, catalog.ErrAlertNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "alert not found"})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

// asOfParam reads the optional asOf query parameter, defaulting to today.
func asOfParam(c *gin.Context) (time.Time, bool) {
	value := strings.TrimSpace(c.Query("asOf"))
	if value == "" {
		return analyzer.Today(), true
	}
	date, err := catalog.ParseDate(value)
	if err != nil {
		badRequest(c, "asOf must be a YYYY-MM-DD date")
		return time.Time{}, false
	}
	return date, true
}
