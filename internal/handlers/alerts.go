package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kosarica/price-comparator/internal/catalog"
)

// CreateAlertRequest represents a new price alert
type CreateAlertRequest struct {
	ProductID   string   `json:"productId" binding:"required"`
	TargetPrice *float64 `json:"targetPrice" binding:"required"`
}

// AlertsResponse is a list of alerts
type AlertsResponse struct {
	Alerts []catalog.PriceAlert `json:"alerts"`
}

// PriceCheckResponse reports whether a product is at or below a target price
type PriceCheckResponse struct {
	ProductID   string  `json:"productId"`
	TargetPrice float64 `json:"targetPrice"`
	BelowTarget bool    `json:"belowTarget"`
}

// CheckPrice checks a product's cheapest current price against a target
// @Summary Check price against target
// @Tags alerts
// @Produce json
// @Param productId query string true "Product ID"
// @Param targetPrice query number true "Target price"
// @Success 200 {object} PriceCheckResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/alerts/check [get]
func CheckPrice(c *gin.Context) {
	productID := strings.TrimSpace(c.Query("productId"))
	if productID == "" {
		badRequest(c, "productId is required")
		return
	}
	target, err := strconv.ParseFloat(c.Query("targetPrice"), 64)
	if err != nil {
		badRequest(c, "targetPrice must be a number")
		return
	}

	below, err := analyzer.CheckBelowTarget(c.Request.Context(), productID, target)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, PriceCheckResponse{ProductID: productID, TargetPrice: target, BelowTarget: below})
}

// CreateAlert registers a price alert
// @Summary Create price alert
// @Tags alerts
// @Accept json
// @Produce json
// @Param request body CreateAlertRequest true "Alert"
// @Success 201 {object} catalog.PriceAlert
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/alerts [post]
func CreateAlert(c *gin.Context) {
	var req CreateAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	alert, err := alertService.Create(c.Request.Context(), req.ProductID, *req.TargetPrice)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, alert)
}

// ListActiveAlerts lists alerts that have not been triggered
// @Summary Active alerts
// @Tags alerts
// @Produce json
// @Success 200 {object} AlertsResponse
// @Router /api/alerts/active [get]
func ListActiveAlerts(c *gin.Context) {
	alerts, err := alertService.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, AlertsResponse{Alerts: alerts})
}

// ListDueAlerts lists active alerts whose target price is currently met
// @Summary Due alerts
// @Tags alerts
// @Produce json
// @Success 200 {object} AlertsResponse
// @Router /api/alerts/due [get]
func ListDueAlerts(c *gin.Context) {
	alerts, err := alertService.DueAlerts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, AlertsResponse{Alerts: alerts})
}

// TriggerAlert marks an alert as triggered
// @Summary Trigger alert
// @Tags alerts
// @Produce json
// @Param id path string true "Alert ID"
// @Success 200 {object} catalog.PriceAlert
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/alerts/{id}/trigger [put]
func TriggerAlert(c *gin.Context) {
	alert, err := alertService.MarkTriggered(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, alert)
}
