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

// BannerHandler serves both the public banner endpoint and the admin CRUD.
type BannerHandler struct {
	banners *service.BannerService
}

// NewBannerHandler creates a new BannerHandler.
func NewBannerHandler(banners *service.BannerService) *BannerHandler {
	return &BannerHandler{banners: banners}
}

// CreateBannerRequest is the admin payload for creating a banner.
type CreateBannerRequest struct {
	TitleSr       string     `json:"titleSr" binding:"required"`
	TitleEn       string     `json:"titleEn" binding:"required"`
	DescriptionSr string     `json:"descriptionSr"`
	DescriptionEn string     `json:"descriptionEn"`
	Image         string     `json:"image"`
	TargetURL     string     `json:"targetUrl"`
	IsActive      *bool      `json:"isActive"`
	Position      string     `json:"position" binding:"required"`
	DisplayOrder  int        `json:"order"`
	StartsAt      *time.Time `json:"startDate"`
	EndsAt        *time.Time `json:"endDate"`
}

// GetBanners returns display-eligible banners for a position.
// GET /v1/banners?position=
func (h *BannerHandler) GetBanners(c *gin.Context) {
	position := models.BannerPosition(c.Query("position"))
	if position != "" && !position.Valid() {
		utils.Error(c, http.StatusBadRequest, "INVALID_POSITION", "position must be hero or promo")
		return
	}
	banners, degraded := h.banners.ListActive(c.Request.Context(), position)
	utils.SuccessDegraded(c, http.StatusOK, "Banners retrieved successfully", banners, degraded)
}

// ListBanners returns every banner for the admin panel.
// GET /v1/admin/banners
func (h *BannerHandler) ListBanners(c *gin.Context) {
	banners, err := h.banners.ListAll(c.Request.Context())
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to retrieve banners")
		return
	}
	utils.Success(c, http.StatusOK, "Banners retrieved successfully", banners)
}

// CreateBanner inserts a new banner.
// POST /v1/admin/banners
func (h *BannerHandler) CreateBanner(c *gin.Context) {
	var req CreateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	row := &models.BannerRow{
		TitleSr:       req.TitleSr,
		TitleEn:       req.TitleEn,
		DescriptionSr: req.DescriptionSr,
		DescriptionEn: req.DescriptionEn,
		Image:         req.Image,
		TargetURL:     req.TargetURL,
		IsActive:      active,
		Position:      models.BannerPosition(req.Position),
		DisplayOrder:  req.DisplayOrder,
		StartsAt:      req.StartsAt,
		EndsAt:        req.EndsAt,
	}

	banner, err := h.banners.Create(c.Request.Context(), row)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidPosition) {
			utils.Error(c, http.StatusBadRequest, "INVALID_POSITION", "position must be hero or promo")
			return
		}
		utils.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create banner")
		return
	}
	utils.Success(c, http.StatusCreated, "Banner created successfully", banner)
}

// UpdateBanner applies a partial patch.
// PUT /v1/admin/banners/:id
func (h *BannerHandler) UpdateBanner(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_ID", "Banner id must be an integer")
		return
	}

	var patch models.BannerPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	banner, err := h.banners.Update(c.Request.Context(), id, patch)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrNotFound):
			utils.Error(c, http.StatusNotFound, "NOT_FOUND", "Banner not found")
		case errors.Is(err, utils.ErrInvalidPosition):
			utils.Error(c, http.StatusBadRequest, "INVALID_POSITION", "position must be hero or promo")
		default:
			utils.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update banner")
		}
		return
	}
	utils.Success(c, http.StatusOK, "Banner updated successfully", banner)
}

// DeleteBanner removes a banner.
// DELETE /v1/admin/banners/:id
func (h *BannerHandler) DeleteBanner(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_ID", "Banner id must be an integer")
		return
	}
	if err := h.banners.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.Error(c, http.StatusNotFound, "NOT_FOUND", "Banner not found")
			return
		}
		utils.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete banner")
		return
	}
	utils.Success(c, http.StatusOK, "Banner deleted successfully", nil)
}
