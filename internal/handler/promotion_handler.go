package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tehnoshop/storefront-api/internal/models"
	"github.com/tehnoshop/storefront-api/internal/service"
	"github.com/tehnoshop/storefront-api/internal/utils"
)

// PromotionHandler serves both the public promotion endpoint and the admin CRUD.
type PromotionHandler struct {
	promotions *service.PromotionService
}

// NewPromotionHandler creates a new PromotionHandler.
func NewPromotionHandler(promotions *service.PromotionService) *PromotionHandler {
	return &PromotionHandler{promotions: promotions}
}

// CreatePromotionRequest is the admin payload for creating a promotion.
type CreatePromotionRequest struct {
	TitleSr       string     `json:"titleSr" binding:"required"`
	TitleEn       string     `json:"titleEn" binding:"required"`
	DescriptionSr string     `json:"descriptionSr"`
	DescriptionEn string     `json:"descriptionEn"`
	Image         string     `json:"image"`
	Link          string     `json:"link"`
	IsActive      *bool      `json:"isActive"`
	Position      string     `json:"position" binding:"required"`
	DisplayOrder  int        `json:"order"`
	Discount      *float64   `json:"discount"`
	StartsAt      *time.Time `json:"startDate"`
	EndsAt        *time.Time `json:"endDate"`
}

// GetPromotions returns display-eligible promotions for a position.
// GET /v1/promotions?position=
func (h *PromotionHandler) GetPromotions(c *gin.Context) {
	position := models.PromotionPosition(c.Query("position"))
	if position != "" && !position.Valid() {
		utils.Error(c, http.StatusBadRequest, "INVALID_POSITION", "position must be home or category")
		return
	}
	promotions, degraded := h.promotions.ListActive(c.Request.Context(), position)
	utils.SuccessDegraded(c, http.StatusOK, "Promotions retrieved successfully", promotions, degraded)
}

// ListPromotions returns every promotion for the admin panel.
// GET /v1/admin/promotions
func (h *PromotionHandler) ListPromotions(c *gin.Context) {
	promotions, err := h.promotions.ListAll(c.Request.Context())
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to retrieve promotions")
		return
	}
	utils.Success(c, http.StatusOK, "Promotions retrieved successfully", promotions)
}

// CreatePromotion inserts a new promotion.
// POST /v1/admin/promotions
func (h *PromotionHandler) CreatePromotion(c *gin.Context) {
	var req CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	row := &models.PromotionRow{
		TitleSr:       req.TitleSr,
		TitleEn:       req.TitleEn,
		DescriptionSr: req.DescriptionSr,
		DescriptionEn: req.DescriptionEn,
		Image:         req.Image,
		Link:          req.Link,
		IsActive:      active,
		Position:      models.PromotionPosition(req.Position),
		DisplayOrder:  req.DisplayOrder,
		Discount:      req.Discount,
		StartsAt:      req.StartsAt,
		EndsAt:        req.EndsAt,
	}

	promotion, err := h.promotions.Create(c.Request.Context(), row)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidPosition) {
			utils.Error(c, http.StatusBadRequest, "INVALID_POSITION", "position must be home or category")
			return
		}
		utils.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create promotion")
		return
	}
	utils.Success(c, http.StatusCreated, "Promotion created successfully", promotion)
}

// UpdatePromotion applies a partial patch.
// PUT /v1/admin/promotions/:id
func (h *PromotionHandler) UpdatePromotion(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_ID", "Promotion id must be an integer")
		return
	}

	var patch models.PromotionPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	promotion, err := h.promotions.Update(c.Request.Context(), id, patch)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrNotFound):
			utils.Error(c, http.StatusNotFound, "NOT_FOUND", "Promotion not found")
		case errors.Is(err, utils.ErrInvalidPosition):
			utils.Error(c, http.StatusBadRequest, "INVALID_POSITION", "position must be home or category")
		default:
			utils.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update promotion")
		}
		return
	}
	utils.Success(c, http.StatusOK, "Promotion updated successfully", promotion)
}

// DeletePromotion removes a promotion.
// DELETE /v1/admin/promotions/:id
func (h *PromotionHandler) DeletePromotion(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_ID", "Promotion id must be an integer")
		return
	}
	if err := h.promotions.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.Error(c, http.StatusNotFound, "NOT_FOUND", "Promotion not found")
			return
		}
		utils.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete promotion")
		return
	}
	utils.Success(c, http.StatusOK, "Promotion deleted successfully", nil)
}
