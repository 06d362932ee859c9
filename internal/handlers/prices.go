package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kosarica/price-comparator/internal/analysis"
	"github.com/kosarica/price-comparator/internal/catalog"
)

// CompareResponse lists the current offers for a product, cheapest first
type CompareResponse struct {
	ProductID string           `json:"productId"`
	Offers    []analysis.Offer `json:"offers"`
}

// ComparePrices compares the current price of a product across stores
// @Summary Compare prices across stores
// @Tags prices
// @Produce json
// @Param productId path string true "Product ID"
// @Param asOf query string false "Compare as of this date (YYYY-MM-DD)"
// @Success 200 {object} CompareResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/compare/{productId} [get]
func ComparePrices(c *gin.Context) {
	productID := c.Param("productId")
	ctx := c.Request.Context()

	var (
		offers []analysis.Offer
		err    error
	)
	if c.Query("asOf") != "" {
		asOf, ok := asOfParam(c)
		if !ok {
			return
		}
		offers, err = analyzer.ComparePricesAsOf(ctx, productID, asOf)
	} else {
		offers, err = analyzer.CompareCurrentPrices(ctx, productID)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, CompareResponse{ProductID: productID, Offers: offers})
}

// HistoryResponse is a product's price history
type HistoryResponse struct {
	ProductID string                  `json:"productId"`
	Store     string                  `json:"store,omitempty"`
	History   []catalog.PriceSnapshot `json:"history"`
}

// GetPriceHistory returns the price history of a product
// @Summary Price history
// @Tags prices
// @Produce json
// @Param productId path string true "Product ID"
// @Param store query string false "Restrict to one store"
// @Success 200 {object} HistoryResponse
// @Router /api/history/{productId} [get]
func GetPriceHistory(c *gin.Context) {
	productID := c.Param("productId")
	store := strings.TrimSpace(c.Query("store"))

	history, err := analyzer.PriceHistory(c.Request.Context(), productID, store)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, HistoryResponse{ProductID: productID, Store: store, History: history})
}

// GetAlternative returns a better-value product in the same category
// @Summary Best value alternative
// @Tags prices
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} analysis.Alternative
// @Failure 404 {object} ErrorResponse "No cheaper alternative"
// @Router /api/alternative/{productId} [get]
func GetAlternative(c *gin.Context) {
	alt, err := analyzer.BestValueAlternative(c.Request.Context(), c.Param("productId"))
	if err != nil {
		respondError(c, err)
		return
	}
	if alt == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "no better value alternative"})
		return
	}

	c.JSON(http.StatusOK, alt)
}
