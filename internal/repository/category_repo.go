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

const categoryColumns = `id, slug, name_sr, name_en, description_sr, description_en,
	image, is_active, display_order, parent_id, created_at, updated_at`

// displayOrderClause sequences storefront lists. The id tie-break keeps rows
// with equal display_order in a stable order.
const displayOrderClause = ` ORDER BY display_order ASC, id ASC`

// CategoryRepository handles data access for categories.
type CategoryRepository struct {
	db *sqlx.DB
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// List returns categories ordered by display_order; ties break on id so
// relative insertion order is stable. When activeOnly is set, inactive
// categories are excluded.
func (r *CategoryRepository) List(ctx context.Context, activeOnly bool) ([]models.CategoryRow, error) {
	q := `SELECT ` + categoryColumns + ` FROM categories`
	if activeOnly {
		q += ` WHERE is_active = true`
	}
	q += displayOrderClause

	var rows []models.CategoryRow
	if err := r.db.SelectContext(ctx, &rows, q); err != nil {
		return nil, err
	}
	return rows, nil
}

// GetBySlug returns the category uniquely identified by slug, or nil when no
// row matches.
func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*models.CategoryRow, error) {
	const q = `SELECT ` + categoryColumns + ` FROM categories WHERE slug = $1 LIMIT 1`

	var row models.CategoryRow
	if err := r.db.GetContext(ctx, &row, q, slug); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// GetByID returns a single category by id, or nil when no row matches.
func (r *CategoryRepository) GetByID(ctx context.Context, id int) (*models.CategoryRow, error) {
	const q = `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1 LIMIT 1`

	var row models.CategoryRow
	if err := r.db.GetContext(ctx, &row, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// Create inserts a category and returns the stored row.
func (r *CategoryRepository) Create(ctx context.Context, c *models.CategoryRow) (*models.CategoryRow, error) {
	const q = `
        INSERT INTO categories (slug, name_sr, name_en, description_sr, description_en,
            image, is_active, display_order, parent_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING ` + categoryColumns

	var row models.CategoryRow
	err := r.db.GetContext(ctx, &row, q,
		c.Slug, c.NameSr, c.NameEn, c.DescriptionSr, c.DescriptionEn,
		c.Image, c.IsActive, c.DisplayOrder, c.ParentID,
	)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Update applies a sparse patch: only non-nil fields enter the SET clause,
// omitted fields are left untouched in storage. Returns nil when no row
// matches the id.
func (r *CategoryRepository) Update(ctx context.Context, id int, patch models.CategoryPatch) (*models.CategoryRow, error) {
	sets, args := categoryPatchAssignments(patch)
	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)
	q := fmt.Sprintf(`UPDATE categories SET %s WHERE id = $%d RETURNING `+categoryColumns,
		strings.Join(sets, ", "), len(args))

	var row models.CategoryRow
	if err := r.db.GetContext(ctx, &row, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// categoryPatchAssignments converts a patch into SET fragments and positional args.
func categoryPatchAssignments(patch models.CategoryPatch) ([]string, []interface{}) {
	var sets []string
	var args []interface{}
	add := func(col string, v interface{}) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if patch.Slug != nil {
		add("slug", *patch.Slug)
	}
	if patch.NameSr != nil {
		add("name_sr", *patch.NameSr)
	}
	if patch.NameEn != nil {
		add("name_en", *patch.NameEn)
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
	if patch.IsActive != nil {
		add("is_active", *patch.IsActive)
	}
	if patch.DisplayOrder != nil {
		add("display_order", *patch.DisplayOrder)
	}
	if patch.ParentID != nil {
		add("parent_id", *patch.ParentID)
	}
	return sets, args
}

// Delete removes a category by id. Returns sql.ErrNoRows when nothing matched.
func (r *CategoryRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
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
