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

// CategoryHandler serves both the public category endpoints and the admin CRUD.
type CategoryHandler struct {
	catalog *service.CatalogService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(catalog *service.CatalogService) *CategoryHandler {
	return &CategoryHandler{catalog: catalog}
}

// CreateCategoryRequest is the admin payload for creating a category.
type CreateCategoryRequest struct {
	Slug          string `json:"slug" binding:"required"`
	NameSr        string `json:"nameSr" binding:"required"`
	NameEn        string `json:"nameEn" binding:"required"`
	DescriptionSr string `json:"descriptionSr"`
	DescriptionEn string `json:"descriptionEn"`
	Image         string `json:"image"`
	IsActive      *bool  `json:"isActive"`
	DisplayOrder  int    `json:"displayOrder"`
	ParentID      *int   `json:"parentId"`
}

// GetCategories returns active categories in display order.
// GET /v1/categories
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, degraded := h.catalog.ListCategories(c.Request.Context())
	utils.SuccessDegraded(c, http.StatusOK, "Categories retrieved successfully", categories, degraded)
}

// GetCategoryBySlug returns one category by its unique slug.
// GET /v1/categories/:slug
func (h *CategoryHandler) GetCategoryBySlug(c *gin.Context) {
	category := h.catalog.GetCategoryBySlug(c.Request.Context(), c.Param("slug"))
	if category == nil {
		utils.Error(c, http.StatusNotFound, "NOT_FOUND", "Category not found")
		return
	}
	utils.Success(c, http.StatusOK, "Category retrieved successfully", category)
}

// ListCategories returns every category including inactive ones.
// GET /v1/admin/categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalog.ListAllCategories(c.Request.Context())
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to retrieve categories")
		return
	}
	utils.Success(c, http.StatusOK, "Categories retrieved successfully", categories)
}

// CreateCategory inserts a new category.
// POST /v1/admin/categories
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	row := &models.CategoryRow{
		Slug:          req.Slug,
		NameSr:        req.NameSr,
		NameEn:        req.NameEn,
		DescriptionSr: req.DescriptionSr,
		DescriptionEn: req.DescriptionEn,
		Image:         req.Image,
		IsActive:      active,
		DisplayOrder:  req.DisplayOrder,
		ParentID:      req.ParentID,
	}

	category, err := h.catalog.CreateCategory(c.Request.Context(), row)
	if err != nil {
		if errors.Is(err, utils.ErrDuplicateSlug) {
			utils.Error(c, http.StatusConflict, "DUPLICATE_SLUG", "A category with this slug already exists")
			return
		}
		utils.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create category")
		return
	}
	utils.Success(c, http.StatusCreated, "Category created successfully", category)
}

// UpdateCategory applies a partial patch: only fields present in the body are
// written.
// PUT /v1/admin/categories/:id
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_ID", "Category id must be an integer")
		return
	}

	var patch models.CategoryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	category, err := h.catalog.UpdateCategory(c.Request.Context(), id, patch)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrNotFound):
			utils.Error(c, http.StatusNotFound, "NOT_FOUND", "Category not found")
		case errors.Is(err, utils.ErrDuplicateSlug):
			utils.Error(c, http.StatusConflict, "DUPLICATE_SLUG", "A category with this slug already exists")
		default:
			utils.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update category")
		}
		return
	}
	utils.Success(c, http.StatusOK, "Category updated successfully", category)
}

// DeleteCategory removes a category.
// DELETE /v1/admin/categories/:id
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_ID", "Category id must be an integer")
		return
	}
	if err := h.catalog.DeleteCategory(c.Request.Context(), id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.Error(c, http.StatusNotFound, "NOT_FOUND", "Category not found")
			return
		}
		utils.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete category")
		return
	}
	utils.Success(c, http.StatusOK, "Category deleted successfully", nil)
}
