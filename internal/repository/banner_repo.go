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

const bannerColumns = `id, title_sr, title_en, description_sr, description_en,
	image, target_url, is_active, position, display_order, starts_at, ends_at,
	created_at, updated_at`

// BannerRepository handles data access for banners.
type BannerRepository struct {
	db *sqlx.DB
}

// NewBannerRepository creates a new BannerRepository.
func NewBannerRepository(db *sqlx.DB) *BannerRepository {
	return &BannerRepository{db: db}
}

// ListActive returns banners eligible for display at the given position:
// active and inside their date window (NULL bounds are open-ended), ordered
// by display_order with id as the stable tie-break. An empty position
// matches all positions.
func (r *BannerRepository) ListActive(ctx context.Context, position models.BannerPosition) ([]models.BannerRow, error) {
	const q = `SELECT ` + bannerColumns + ` FROM banners
        WHERE is_active = true
        AND ($1 = '' OR position = $1)
        AND (starts_at IS NULL OR starts_at <= NOW())
        AND (ends_at IS NULL OR ends_at >= NOW())` + displayOrderClause

	var rows []models.BannerRow
	if err := r.db.SelectContext(ctx, &rows, q, string(position)); err != nil {
		return nil, err
	}
	return rows, nil
}

// ListAll returns every banner regardless of state, for the admin panel.
func (r *BannerRepository) ListAll(ctx context.Context) ([]models.BannerRow, error) {
	const q = `SELECT ` + bannerColumns + ` FROM banners` + displayOrderClause

	var rows []models.BannerRow
	if err := r.db.SelectContext(ctx, &rows, q); err != nil {
		return nil, err
	}
	return rows, nil
}

// GetByID returns a single banner by id, or nil when no row matches.
func (r *BannerRepository) GetByID(ctx context.Context, id int) (*models.BannerRow, error) {
	const q = `SELECT ` + bannerColumns + ` FROM banners WHERE id = $1 LIMIT 1`

	var row models.BannerRow
	if err := r.db.GetContext(ctx, &row, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// Create inserts a banner and returns the stored row.
func (r *BannerRepository) Create(ctx context.Context, b *models.BannerRow) (*models.BannerRow, error) {
	const q = `
        INSERT INTO banners (title_sr, title_en, description_sr, description_en,
            image, target_url, is_active, position, display_order, starts_at, ends_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING ` + bannerColumns

	var row models.BannerRow
	err := r.db.GetContext(ctx, &row, q,
		b.TitleSr, b.TitleEn, b.DescriptionSr, b.DescriptionEn,
		b.Image, b.TargetURL, b.IsActive, b.Position, b.DisplayOrder, b.StartsAt, b.EndsAt,
	)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Update applies a sparse patch: only non-nil fields enter the SET clause.
// Returns nil when no row matches the id.
func (r *BannerRepository) Update(ctx context.Context, id int, patch models.BannerPatch) (*models.BannerRow, error) {
	sets, args := bannerPatchAssignments(patch)
	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)
	q := fmt.Sprintf(`UPDATE banners SET %s WHERE id = $%d RETURNING `+bannerColumns,
		strings.Join(sets, ", "), len(args))

	var row models.BannerRow
	if err := r.db.GetContext(ctx, &row, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// bannerPatchAssignments converts a patch into SET fragments and positional args.
func bannerPatchAssignments(patch models.BannerPatch) ([]string, []interface{}) {
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
	if patch.TargetURL != nil {
		add("target_url", *patch.TargetURL)
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
	if patch.StartsAt != nil {
		add("starts_at", *patch.StartsAt)
	}
	if patch.EndsAt != nil {
		add("ends_at", *patch.EndsAt)
	}
	return sets, args
}

// Delete removes a banner by id. Returns sql.ErrNoRows when nothing matched.
func (r *BannerRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM banners WHERE id = $1`, id)
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
