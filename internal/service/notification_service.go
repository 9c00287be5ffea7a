package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/tehnoshop/storefront-api/internal/models"
	"github.com/tehnoshop/storefront-api/internal/utils"
)

// NotificationStore is the repository surface the notification service needs.
type NotificationStore interface {
	List(ctx context.Context, limit int) ([]models.Notification, error)
	CountUnread(ctx context.Context) (int, error)
	Create(ctx context.Context, n *models.Notification) (*models.Notification, error)
	MarkRead(ctx context.Context, id int) error
	MarkAllRead(ctx context.Context) error
	Delete(ctx context.Context, id int) error
}

// NotificationService owns admin notifications. These are admin-only flows
// where failures surface so the UI can show a toast.
type NotificationService struct {
	notifications NotificationStore
}

// NewNotificationService constructs a NotificationService.
func NewNotificationService(notifications NotificationStore) *NotificationService {
	return &NotificationService{notifications: notifications}
}

// listLimit caps the notification dropdown.
const listLimit = 50

// List returns recent notifications, newest first.
func (s *NotificationService) List(ctx context.Context) ([]models.Notification, error) {
	return s.notifications.List(ctx, listLimit)
}

// CountUnread returns the unread badge count.
func (s *NotificationService) CountUnread(ctx context.Context) (int, error) {
	return s.notifications.CountUnread(ctx)
}

// Create validates and inserts a notification.
func (s *NotificationService) Create(ctx context.Context, n *models.Notification) (*models.Notification, error) {
	if n.Type == "" {
		n.Type = models.NotificationInfo
	}
	if !n.Type.Valid() {
		return nil, utils.ErrInvalidStatus
	}
	return s.notifications.Create(ctx, n)
}

// MarkRead marks one notification read.
func (s *NotificationService) MarkRead(ctx context.Context, id int) error {
	if err := s.notifications.MarkRead(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return utils.ErrNotFound
		}
		return err
	}
	return nil
}

// MarkAllRead marks every notification read.
func (s *NotificationService) MarkAllRead(ctx context.Context) error {
	return s.notifications.MarkAllRead(ctx)
}

// Delete removes a notification.
func (s *NotificationService) Delete(ctx context.Context, id int) error {
	if err := s.notifications.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return utils.ErrNotFound
		}
		return err
	}
	return nil
}
