package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/tehnoshop/storefront-api/internal/models"
)

const promotionColumns = `id, title_sr, title_en, description_sr, description_en,
	image, link, is_active, position, display_order, discount, starts_at, ends_at,
	created_at, updated_at`

// PromotionRepository handles data access for promotions.
type PromotionRepository struct {
	db *sqlx.DB
}

// NewPromotionRepository creates a new PromotionRepository.
func NewPromotionRepository(db *sqlx.DB) *PromotionRepository {
	return &PromotionRepository{db: db}
}

// ListActive returns promotions eligible for display at the given position:
// active and inside their date window, ordered by display_order with id as
// the stable tie-break. An empty position matches all positions.
func (r *PromotionRepository) ListActive(ctx context.Context, position models.PromotionPosition) ([]models.PromotionRow, error) {
	const q = `SELECT ` + promotionColumns + ` FROM promotions
        WHERE is_active = true
        AND ($1 = '' OR position = $1)
        AND (starts_at IS NULL OR starts_at <= NOW())
        AND (ends_at IS NULL OR ends_at >= NOW())` + displayOrderClause

	var rows []models.PromotionRow
	if err := r.db.SelectContext(ctx, &rows, q, string(position)); err != nil {
		return nil, err
	}
	return rows, nil
}

// ListAll returns every promotion regardless of state, for the admin panel.
func (r *PromotionRepository) ListAll(ctx context.Context) ([]models.PromotionRow, error) {
	const q = `SELECT ` + promotionColumns + ` FROM promotions` + displayOrderClause

	var rows []models.PromotionRow
	if err := r.db.SelectContext(ctx, &rows, q); err != nil {
		return nil, err
	}
	return rows, nil
}

// GetByID returns a single promotion by id, or nil when no row matches.
func (r *PromotionRepository) GetByID(ctx context.Context, id int) (*models.PromotionRow, error) {
	const q = `SELECT ` + promotionColumns + ` FROM promotions WHERE id = $1 LIMIT 1`

	var row models.PromotionRow
	if err := r.db.GetContext(ctx, &row, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// Create inserts a promotion and returns the stored row.
func (r *PromotionRepository) Create(ctx context.Context, p *models.PromotionRow) (*models.PromotionRow, error) {
	const q = `
        INSERT INTO promotions (title_sr, title_en, description_sr, description_en,
            image, link, is_active, position, display_order, discount, starts_at, ends_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING ` + promotionColumns

	var row models.PromotionRow
	err := r.db.GetContext(ctx, &row, q,
		p.TitleSr, p.TitleEn, p.DescriptionSr, p.DescriptionEn,
		p.Image, p.Link, p.IsActive, p.Position, p.DisplayOrder, p.Discount, p.StartsAt, p.EndsAt,
	)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Update applies a sparse patch: only non-nil fields enter the SET clause.
// Returns nil when no row matches the id.
func (r *PromotionRepository) Update(ctx context.Context, id int, patch models.PromotionPatch) (*models.PromotionRow, error) {
	sets, args := promotionPatchAssignments(patch)
	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)
	q := fmt.Sprintf(`UPDATE promotions SET %s WHERE id = $%d RETURNING `+promotionColumns,
		strings.Join(sets, ", "), len(args))

	var row models.PromotionRow
	if err := r.db.GetContext(ctx, &row, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// promotionPatchAssignments converts a patch into SET fragments and positional args.
func promotionPatchAssignments(patch models.PromotionPatch) ([]string, []interface{}) {
	var sets []string
	var args []interface{}
	add := func(col string, v interface{}) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if patch.TitleSr != nil {
		add("title_sr", *patch.TitleSr)
	}
	if patch.TitleEn != nil {
		add("title_en", *patch.TitleEn)
	}
	if patch.DescriptionSr != nil {
		add("description_sr", *patch.DescriptionSr)
	}
	if patch.DescriptionEn != nil {
		add("description_en", *patch.DescriptionEn)
	}
	if patch.Image != nil {
		add("image", *patch.Image)
	}
	if patch.Link != nil {
		add("link", *patch.Link)
	}
	if patch.IsActive != nil {
		add("is_active", *patch.IsActive)
	}
	if patch.Position != nil {
		add("position", string(*patch.Position))
	}
	if patch.DisplayOrder != nil {
		add("display_order", *patch.DisplayOrder)
	}
	if patch.Discount != nil {
		add("discount", *patch.Discount)
	}
	if patch.StartsAt != nil {
		add("starts_at", *patch.StartsAt)
	}
	if patch.EndsAt != nil {
		add("ends_at", *patch.EndsAt)
	}
	return sets, args
}

// Delete removes a promotion by id. Returns sql.ErrNoRows when nothing matched.
func (r *PromotionRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM promotions WHERE id = $1`, id)
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
