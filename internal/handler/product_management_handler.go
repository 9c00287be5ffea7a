package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tehnoshop/storefront-api/internal/models"
	"github.com/tehnoshop/storefront-api/internal/service"
	"github.com/tehnoshop/storefront-api/internal/utils"
)

// ProductManagementHandler serves the admin product CRUD endpoints.
type ProductManagementHandler struct {
	catalog *service.CatalogService
}

// NewProductManagementHandler creates a new ProductManagementHandler.
func NewProductManagementHandler(catalog *service.CatalogService) *ProductManagementHandler {
	return &ProductManagementHandler{catalog: catalog}
}

// CreateProductRequest is the admin payload for creating a product.
type CreateProductRequest struct {
	TitleSr       string   `json:"titleSr" binding:"required"`
	TitleEn       string   `json:"titleEn" binding:"required"`
	Price         float64  `json:"price" binding:"required"`
	OldPrice      *float64 `json:"oldPrice"`
	Image         string   `json:"image"`
	Category      string   `json:"category" binding:"required"`
	IsNew         bool     `json:"isNew"`
	IsOnSale      bool     `json:"isOnSale"`
	SKU           string   `json:"sku"`
	Stock         int      `json:"stock"`
	Status        string   `json:"status"`
	DescriptionSr string   `json:"descriptionSr"`
	DescriptionEn string   `json:"descriptionEn"`
}

// ListProducts returns all products with admin fields.
// GET /v1/admin/products
func (h *ProductManagementHandler) ListProducts(c *gin.Context) {
	filter := models.ProductFilter{
		Category: c.Query("category"),
		Status:   models.ProductStatus(c.Query("status")),
	}
	products, err := h.catalog.ListAdminProducts(c.Request.Context(), filter)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to retrieve products")
		return
	}
	utils.Success(c, http.StatusOK, "Products retrieved successfully", products)
}

// GetProduct returns one product with admin fields.
// GET /v1/admin/products/:id
func (h *ProductManagementHandler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_ID", "Product id must be an integer")
		return
	}
	product, err := h.catalog.GetAdminProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.Error(c, http.StatusNotFound, "NOT_FOUND", "Product not found")
			return
		}
		utils.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to retrieve product")
		return
	}
	utils.Success(c, http.StatusOK, "Product retrieved successfully", product)
}

// CreateProduct inserts a new product.
// POST /v1/admin/products
func (h *ProductManagementHandler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	row := &models.ProductRow{
		TitleSr:       req.TitleSr,
		TitleEn:       req.TitleEn,
		Price:         req.Price,
		OldPrice:      req.OldPrice,
		Image:         req.Image,
		Category:      req.Category,
		IsNew:         req.IsNew,
		IsOnSale:      req.IsOnSale,
		SKU:           req.SKU,
		Stock:         req.Stock,
		Status:        models.ProductStatus(req.Status),
		DescriptionSr: req.DescriptionSr,
		DescriptionEn: req.DescriptionEn,
	}

	product, err := h.catalog.CreateProduct(c.Request.Context(), row)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidStatus) {
			utils.Error(c, http.StatusBadRequest, "INVALID_STATUS", "status must be active, outOfStock, or draft")
			return
		}
		utils.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create product")
		return
	}
	utils.Success(c, http.StatusCreated, "Product created successfully", product)
}

// UpdateProduct applies a partial patch: only fields present in the body are
// written, everything else is left untouched.
// PUT /v1/admin/products/:id
func (h *ProductManagementHandler) UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_ID", "Product id must be an integer")
		return
	}

	var patch models.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	product, err := h.catalog.UpdateProduct(c.Request.Context(), id, patch)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrNotFound):
			utils.Error(c, http.StatusNotFound, "NOT_FOUND", "Product not found")
		case errors.Is(err, utils.ErrInvalidStatus):
			utils.Error(c, http.StatusBadRequest, "INVALID_STATUS", "status must be active, outOfStock, or draft")
		default:
			utils.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update product")
		}
		return
	}
	utils.Success(c, http.StatusOK, "Product updated successfully", product)
}

// DeleteProduct removes a product.
// DELETE /v1/admin/products/:id
func (h *ProductManagementHandler) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_ID", "Product id must be an integer")
		return
	}
	if err := h.catalog.DeleteProduct(c.Request.Context(), id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.Error(c, http.StatusNotFound, "NOT_FOUND", "Product not found")
			return
		}
		utils.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete product")
		return
	}
	utils.Success(c, http.StatusOK, "Product deleted successfully", nil)
}
