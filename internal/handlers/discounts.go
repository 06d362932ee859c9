package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kosarica/price-comparator/internal/catalog"
)

const defaultTopDiscounts = 3

// DiscountsResponse is a list of discounts evaluated on a date
type DiscountsResponse struct {
	AsOf      string             `json:"asOf"`
	Discounts []catalog.Discount `json:"discounts"`
}

func discountsResponse(c *gin.Context, asOf string, discounts []catalog.Discount, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, DiscountsResponse{AsOf: asOf, Discounts: discounts})
}

// ActiveDiscounts lists discounts active on a date
// @Summary Active discounts
// @Tags discounts
// @Produce json
// @Param asOf query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} DiscountsResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/discounts/active [get]
func ActiveDiscounts(c *gin.Context) {
	asOf, ok := asOfParam(c)
	if !ok {
		return
	}
	discounts, err := analyzer.ActiveDiscounts(c.Request.Context(), asOf)
	discountsResponse(c, asOf.Format(catalog.DateLayout), discounts, err)
}

// BestDiscounts lists the highest active discounts
// @Summary Best discounts
// @Tags discounts
// @Produce json
// @Param top query int false "Number of discounts" default(3)
// @Param asOf query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} DiscountsResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/discounts/best [get]
func BestDiscounts(c *gin.Context) {
	top := defaultTopDiscounts
	if value := c.Query("top"); value != "" {
		n, err := strconv.Atoi(value)
		if err != nil {
			badRequest(c, "top must be an integer")
			return
		}
		top = n
	}
	asOf, ok := asOfParam(c)
	if !ok {
		return
	}
	discounts, err := analyzer.BestDiscounts(c.Request.Context(), asOf, top)
	discountsResponse(c, asOf.Format(catalog.DateLayout), discounts, err)
}

// NewDiscounts lists discounts that started within the last day
// @Summary New discounts
// @Tags discounts
// @Produce json
// @Param asOf query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} DiscountsResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/discounts/new [get]
func NewDiscounts(c *gin.Context) {
	asOf, ok := asOfParam(c)
	if !ok {
		return
	}
	discounts, err := analyzer.NewDiscounts(c.Request.Context(), asOf)
	discountsResponse(c, asOf.Format(catalog.DateLayout), discounts, err)
}
