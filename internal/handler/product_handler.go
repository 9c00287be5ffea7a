package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tehnoshop/storefront-api/internal/models"
	"github.com/tehnoshop/storefront-api/internal/service"
	"github.com/tehnoshop/storefront-api/internal/utils"
)

// ProductHandler serves the public storefront product endpoints.
type ProductHandler struct {
	catalog *service.CatalogService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(catalog *service.CatalogService) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// GetProducts returns products filtered by category/status with an optional
// sort and limit.
// GET /v1/products?category=&sort=&limit=
func (h *ProductHandler) GetProducts(c *gin.Context) {
	ctx := c.Request.Context()

	filter := models.ProductFilter{
		Category: c.Query("category"),
		Status:   models.ProductStatusActive,
		Sort:     models.ProductSort(c.Query("sort")),
	}
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			filter.Limit = n
		}
	}

	products, degraded := h.catalog.ListProducts(ctx, filter)
	utils.SuccessDegraded(c, http.StatusOK, "Products retrieved successfully", products, degraded)
}

// GetProduct returns one product by id.
// GET /v1/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_ID", "Product id must be an integer")
		return
	}

	product := h.catalog.GetProduct(c.Request.Context(), id)
	if product == nil {
		utils.Error(c, http.StatusNotFound, "NOT_FOUND", "Product not found")
		return
	}
	utils.Success(c, http.StatusOK, "Product retrieved successfully", product)
}

// SearchProducts matches the query term against both localized titles.
// GET /v1/products/search?q=
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	term := strings.TrimSpace(c.Query("q"))
	if term == "" {
		utils.Success(c, http.StatusOK, "Search results", []models.Product{})
		return
	}
	products := h.catalog.SearchProducts(c.Request.Context(), term)
	utils.Success(c, http.StatusOK, "Search results", products)
}

// GetRelatedProducts returns other active products from the same category.
// GET /v1/products/:id/related
func (h *ProductHandler) GetRelatedProducts(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_ID", "Product id must be an integer")
		return
	}
	products := h.catalog.RelatedProducts(c.Request.Context(), id)
	utils.Success(c, http.StatusOK, "Related products retrieved successfully", products)
}
