package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kosarica/price-comparator/internal/analysis"
)

const maxBasketItems = 200

// BasketRequest represents the basket optimization request
type BasketRequest struct {
	ProductIDs []string `json:"productIds" binding:"required,min=1"`
}

// StoreBasket is the part of a basket bought at one store
type StoreBasket struct {
	Store    string           `json:"store"`
	Items    []analysis.Offer `json:"items"`
	Subtotal float64          `json:"subtotal"`
}

// BasketResponse represents the per-item cheapest store allocation
type BasketResponse struct {
	Stores    []StoreBasket `json:"stores"`
	ItemCount int           `json:"itemCount"`
	TotalCost float64       `json:"totalCost"`
}

// OptimizeBasketQuery allocates products given as query parameters
// @Summary Optimize basket
// @Description Assigns each product to the store with its lowest current price. Accepts repeated or comma-separated products.
// @Tags basket
// @Produce json
// @Param products query []string true "Product IDs" collectionFormat(multi)
// @Success 200 {object} BasketResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/basket/optimize [get]
func OptimizeBasketQuery(c *gin.Context) {
	var ids []string
	for _, value := range c.QueryArray("products") {
		for _, id := range strings.Split(value, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}
	optimizeBasket(c, ids)
}

// OptimizeBasket allocates products given in the request body
// @Summary Optimize basket
// @Tags basket
// @Accept json
// @Produce json
// @Param request body BasketRequest true "Basket"
// @Success 200 {object} BasketResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/basket/optimize [post]
func OptimizeBasket(c *gin.Context) {
	var req BasketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	optimizeBasket(c, req.ProductIDs)
}

func optimizeBasket(c *gin.Context, ids []string) {
	if len(ids) == 0 {
		badRequest(c, "at least one product is required")
		return
	}
	if len(ids) > maxBasketItems {
		badRequest(c, "too many products in basket")
		return
	}

	allocation, err := analyzer.Allocate(c.Request.Context(), ids)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := BasketResponse{
		Stores:    make([]StoreBasket, 0, len(allocation.Stores)),
		ItemCount: allocation.ItemCount(),
		TotalCost: allocation.TotalCost,
	}
	for _, store := range allocation.StoreNames() {
		items := allocation.Stores[store]
		sb := StoreBasket{Store: store, Items: items}
		for _, item := range items {
			sb.Subtotal += item.Price
		}
		resp.Stores = append(resp.Stores, sb)
	}

	c.JSON(http.StatusOK, resp)
}
