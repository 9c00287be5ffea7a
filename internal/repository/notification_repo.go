package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/tehnoshop/storefront-api/internal/models"
)

// NotificationRepository handles data access for admin notifications.
type NotificationRepository struct {
	db *sqlx.DB
}

// NewNotificationRepository creates a new NotificationRepository.
func NewNotificationRepository(db *sqlx.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// List returns notifications newest first, capped at limit (<= 0 means no cap).
func (r *NotificationRepository) List(ctx context.Context, limit int) ([]models.Notification, error) {
	q := `SELECT id, title, message, type, link, is_read, created_at
	      FROM notifications ORDER BY created_at DESC, id DESC`
	var rows []models.Notification
	var err error
	if limit > 0 {
		err = r.db.SelectContext(ctx, &rows, q+` LIMIT $1`, limit)
	} else {
		err = r.db.SelectContext(ctx, &rows, q)
	}
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CountUnread returns the number of unread notifications.
func (r *NotificationRepository) CountUnread(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(1) FROM notifications WHERE is_read = false`); err != nil {
		return 0, err
	}
	return n, nil
}

// Create inserts a notification and returns the stored row.
func (r *NotificationRepository) Create(ctx context.Context, n *models.Notification) (*models.Notification, error) {
	const q = `
        INSERT INTO notifications (title, message, type, link)
        VALUES ($1, $2, $3, $4)
        RETURNING id, title, message, type, link, is_read, created_at`

	var row models.Notification
	if err := r.db.GetContext(ctx, &row, q, n.Title, n.Message, n.Type, n.Link); err != nil {
		return nil, err
	}
	return &row, nil
}

// MarkRead marks a single notification read. Returns sql.ErrNoRows when
// nothing matched.
func (r *NotificationRepository) MarkRead(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `UPDATE notifications SET is_read = true WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// MarkAllRead marks every notification read.
func (r *NotificationRepository) MarkAllRead(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `UPDATE notifications SET is_read = true WHERE is_read = false`)
	return err
}

// Delete removes a notification by id. Returns sql.ErrNoRows when nothing matched.
func (r *NotificationRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
