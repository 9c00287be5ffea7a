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

const productColumns = `id, title_sr, title_en, price, old_price, image, category,
	is_new, is_on_sale, sku, stock, status, description_sr, description_en,
	created_at, updated_at`

// ProductRepository handles data access for products.
type ProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// List returns products matching the filter. Category and status filters are
// ignored when empty. Rows carry no guaranteed order unless a sort is
// requested; limit <= 0 means no limit.
func (r *ProductRepository) List(ctx context.Context, f models.ProductFilter) ([]models.ProductRow, error) {
	q := `SELECT ` + productColumns + ` FROM products
        WHERE ($1 = '' OR category = $1)
        AND ($2 = '' OR status = $2)`

	switch f.Sort {
	case models.ProductSortPriceAsc:
		q += ` ORDER BY price ASC, id ASC`
	case models.ProductSortPriceDesc:
		q += ` ORDER BY price DESC, id ASC`
	case models.ProductSortNewest:
		q += ` ORDER BY created_at DESC, id DESC`
	}

	args := []interface{}{f.Category, string(f.Status)}
	if f.Limit > 0 {
		q += fmt.Sprintf(` LIMIT $%d`, len(args)+1)
		args = append(args, f.Limit)
	}

	var rows []models.ProductRow
	if err := r.db.SelectContext(ctx, &rows, q, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

// GetByID returns a single product by id, or nil when no row matches.
func (r *ProductRepository) GetByID(ctx context.Context, id int) (*models.ProductRow, error) {
	const q = `SELECT ` + productColumns + ` FROM products WHERE id = $1 LIMIT 1`

	var row models.ProductRow
	if err := r.db.GetContext(ctx, &row, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// Search performs a case-insensitive substring match across both localized
// title columns. Only active products are returned.
func (r *ProductRepository) Search(ctx context.Context, term string) ([]models.ProductRow, error) {
	const q = `SELECT ` + productColumns + ` FROM products
        WHERE (title_sr ILIKE '%' || $1 || '%' OR title_en ILIKE '%' || $1 || '%')
        AND status = $2`

	var rows []models.ProductRow
	if err := r.db.SelectContext(ctx, &rows, q, term, string(models.ProductStatusActive)); err != nil {
		return nil, err
	}
	return rows, nil
}

// GetRelated resolves the category of the given product, then returns other
// active products in the same category, excluding the original, capped at
// limit. Returns an empty slice when the source product does not exist.
func (r *ProductRepository) GetRelated(ctx context.Context, id, limit int) ([]models.ProductRow, error) {
	src, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if src == nil {
		return []models.ProductRow{}, nil
	}

	const q = `SELECT ` + productColumns + ` FROM products
        WHERE category = $1 AND id <> $2 AND status = $3
        LIMIT $4`

	var rows []models.ProductRow
	if err := r.db.SelectContext(ctx, &rows, q, src.Category, id, string(models.ProductStatusActive), limit); err != nil {
		return nil, err
	}
	return rows, nil
}

// Create inserts a product and returns the stored row.
func (r *ProductRepository) Create(ctx context.Context, p *models.ProductRow) (*models.ProductRow, error) {
	const q = `
        INSERT INTO products (title_sr, title_en, price, old_price, image, category,
            is_new, is_on_sale, sku, stock, status, description_sr, description_en)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING ` + productColumns

	var row models.ProductRow
	err := r.db.GetContext(ctx, &row, q,
		p.TitleSr, p.TitleEn, p.Price, p.OldPrice, p.Image, p.Category,
		p.IsNew, p.IsOnSale, p.SKU, p.Stock, p.Status, p.DescriptionSr, p.DescriptionEn,
	)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Update applies a sparse patch: only non-nil fields enter the SET clause,
// omitted fields are left untouched in storage. Returns nil when no row
// matches the id.
func (r *ProductRepository) Update(ctx context.Context, id int, patch models.ProductPatch) (*models.ProductRow, error) {
	sets, args := productPatchAssignments(patch)
	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)
	q := fmt.Sprintf(`UPDATE products SET %s WHERE id = $%d RETURNING `+productColumns,
		strings.Join(sets, ", "), len(args))

	var row models.ProductRow
	if err := r.db.GetContext(ctx, &row, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// productPatchAssignments converts a patch into SET fragments and positional args.
func productPatchAssignments(patch models.ProductPatch) ([]string, []interface{}) {
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
	if patch.Price != nil {
		add("price", *patch.Price)
	}
	if patch.OldPrice != nil {
		add("old_price", *patch.OldPrice)
	}
	if patch.Image != nil {
		add("image", *patch.Image)
	}
	if patch.Category != nil {
		add("category", *patch.Category)
	}
	if patch.IsNew != nil {
		add("is_new", *patch.IsNew)
	}
	if patch.IsOnSale != nil {
		add("is_on_sale", *patch.IsOnSale)
	}
	if patch.SKU != nil {
		add("sku", *patch.SKU)
	}
	if patch.Stock != nil {
		add("stock", *patch.Stock)
	}
	if patch.Status != nil {
		add("status", string(*patch.Status))
	}
	if patch.DescriptionSr != nil {
		add("description_sr", *patch.DescriptionSr)
	}
	if patch.DescriptionEn != nil {
		add("description_en", *patch.DescriptionEn)
	}
	return sets, args
}

// Delete removes a product by id. Returns sql.ErrNoRows when nothing matched.
func (r *ProductRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
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
