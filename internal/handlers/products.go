package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kosarica/price-comparator/internal/catalog"
)

// ProductsResponse is a product listing
type ProductsResponse struct {
	Products []catalog.PriceSnapshot `json:"products"`
	Total    int                     `json:"total"`
}

// ListProducts lists products by category or searches them by name
// @Summary List products
// @Description Returns the latest snapshot of each product. category takes precedence over name.
// @Tags products
// @Produce json
// @Param category query string false "Category (case-insensitive)"
// @Param name query string false "Name fragment (case- and diacritic-insensitive)"
// @Success 200 {object} ProductsResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/products [get]
func ListProducts(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		products []catalog.PriceSnapshot
		err      error
	)
	category := strings.TrimSpace(c.Query("category"))
	name := strings.TrimSpace(c.Query("name"))
	if category == "" && name != "" {
		products, err = analyzer.SearchProducts(ctx, name)
	} else {
		products, err = analyzer.ProductsByCategory(ctx, category)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ProductsResponse{Products: products, Total: len(products)})
}

// ProductDetailsResponse is every snapshot of one product
type ProductDetailsResponse struct {
	ProductID string                  `json:"productId"`
	Snapshots []catalog.PriceSnapshot `json:"snapshots"`
}

// GetProduct returns every snapshot of a product
// @Summary Product details
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} ProductDetailsResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/products/{id} [get]
func GetProduct(c *gin.Context) {
	productID := c.Param("id")

	snapshots, err := analyzer.ProductDetails(c.Request.Context(), productID)
	if err != nil {
		respondError(c, err)
		return
	}
	if len(snapshots) == 0 {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "product not found"})
		return
	}

	c.JSON(http.StatusOK, ProductDetailsResponse{ProductID: productID, Snapshots: snapshots})
}
