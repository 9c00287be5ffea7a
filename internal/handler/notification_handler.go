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

// NotificationHandler serves the admin notification endpoints.
type NotificationHandler struct {
	notifications *service.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notifications *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// CreateNotificationRequest is the payload for creating a notification.
type CreateNotificationRequest struct {
	Title   string  `json:"title" binding:"required"`
	Message string  `json:"message" binding:"required"`
	Type    string  `json:"type"`
	Link    *string `json:"link"`
}

// ListNotifications returns recent notifications, newest first, with the
// unread count.
// GET /v1/admin/notifications
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	ctx := c.Request.Context()
	items, err := h.notifications.List(ctx)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to retrieve notifications")
		return
	}
	unread, err := h.notifications.CountUnread(ctx)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to count notifications")
		return
	}
	utils.Success(c, http.StatusOK, "Notifications retrieved successfully", gin.H{
		"items":  items,
		"unread": unread,
	})
}

// CreateNotification inserts a notification.
// POST /v1/admin/notifications
func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	var req CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	n, err := h.notifications.Create(c.Request.Context(), &models.Notification{
		Title:   req.Title,
		Message: req.Message,
		Type:    models.NotificationType(req.Type),
		Link:    req.Link,
	})
	if err != nil {
		if errors.Is(err, utils.ErrInvalidStatus) {
			utils.Error(c, http.StatusBadRequest, "INVALID_TYPE", "type must be info, success, warning, or error")
			return
		}
		utils.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create notification")
		return
	}
	utils.Success(c, http.StatusCreated, "Notification created successfully", n)
}

// MarkRead marks one notification read.
// POST /v1/admin/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_ID", "Notification id must be an integer")
		return
	}
	if err := h.notifications.MarkRead(c.Request.Context(), id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.Error(c, http.StatusNotFound, "NOT_FOUND", "Notification not found")
			return
		}
		utils.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to mark notification read")
		return
	}
	utils.Success(c, http.StatusOK, "Notification marked read", nil)
}

// MarkAllRead marks every notification read.
// POST /v1/admin/notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.notifications.MarkAllRead(c.Request.Context()); err != nil {
		utils.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to mark notifications read")
		return
	}
	utils.Success(c, http.StatusOK, "All notifications marked read", nil)
}

// DeleteNotification removes a notification.
// DELETE /v1/admin/notifications/:id
func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_ID", "Notification id must be an integer")
		return
	}
	if err := h.notifications.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.Error(c, http.StatusNotFound, "NOT_FOUND", "Notification not found")
			return
		}
		utils.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete notification")
		return
	}
	utils.Success(c, http.StatusOK, "Notification deleted successfully", nil)
}
