package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/tehnoshop/storefront-api/internal/cache"
	"github.com/tehnoshop/storefront-api/internal/models"
	"github.com/tehnoshop/storefront-api/internal/utils"
)

// ProductStore is the repository surface the catalog service needs for products.
type ProductStore interface {
	List(ctx context.Context, f models.ProductFilter) ([]models.ProductRow, error)
	GetByID(ctx context.Context, id int) (*models.ProductRow, error)
	Search(ctx context.Context, term string) ([]models.ProductRow, error)
	GetRelated(ctx context.Context, id, limit int) ([]models.ProductRow, error)
	Create(ctx context.Context, p *models.ProductRow) (*models.ProductRow, error)
	Update(ctx context.Context, id int, patch models.ProductPatch) (*models.ProductRow, error)
	Delete(ctx context.Context, id int) error
}

// CategoryStore is the repository surface the catalog service needs for categories.
type CategoryStore interface {
	List(ctx context.Context, activeOnly bool) ([]models.CategoryRow, error)
	GetBySlug(ctx context.Context, slug string) (*models.CategoryRow, error)
	GetByID(ctx context.Context, id int) (*models.CategoryRow, error)
	Create(ctx context.Context, c *models.CategoryRow) (*models.CategoryRow, error)
	Update(ctx context.Context, id int, patch models.CategoryPatch) (*models.CategoryRow, error)
	Delete(ctx context.Context, id int) error
}

// CatalogService owns products and categories. Storefront reads absorb
// repository failures and degrade to fallback content; admin writes surface
// their errors so the admin UI can report them.
type CatalogService struct {
	products   ProductStore
	categories CategoryStore
	cache      *cache.CatalogCache
}

// NewCatalogService constructs a CatalogService. cache may be nil, in which
// case category reads always hit the database.
func NewCatalogService(products ProductStore, categories CategoryStore, catalogCache *cache.CatalogCache) *CatalogService {
	return &CatalogService{products: products, categories: categories, cache: catalogCache}
}

// relatedLimit caps related-product lookups.
const relatedLimit = 4

// ListProducts returns products matching the filter. On repository failure it
// logs and degrades to the static fallback list.
func (s *CatalogService) ListProducts(ctx context.Context, f models.ProductFilter) ([]models.Product, bool) {
	rows, err := s.products.List(ctx, f)
	if err != nil {
		log.Error().Err(err).Str("category", f.Category).Msg("product list failed, serving fallback")
		return fallbackProducts(), true
	}
	return mapProducts(rows), false
}

// GetProduct returns a single product, or nil when it does not exist or the
// backend is unreachable. Both render as "not found" on the storefront.
func (s *CatalogService) GetProduct(ctx context.Context, id int) *models.Product {
	row, err := s.products.GetByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Int("id", id).Msg("product lookup failed")
		return nil
	}
	if row == nil {
		return nil
	}
	p := row.ToProduct()
	return &p
}

// SearchProducts matches the term case-insensitively against both localized
// titles. Failures degrade to an empty list.
func (s *CatalogService) SearchProducts(ctx context.Context, term string) []models.Product {
	rows, err := s.products.Search(ctx, term)
	if err != nil {
		log.Error().Err(err).Str("term", term).Msg("product search failed")
		return []models.Product{}
	}
	return mapProducts(rows)
}

// RelatedProducts returns other active products from the same category as the
// given product. Failures degrade to an empty list.
func (s *CatalogService) RelatedProducts(ctx context.Context, id int) []models.Product {
	rows, err := s.products.GetRelated(ctx, id, relatedLimit)
	if err != nil {
		log.Error().Err(err).Int("id", id).Msg("related products failed")
		return []models.Product{}
	}
	return mapProducts(rows)
}

// ListCategories returns active categories in display order, read through the
// cache when one is configured. Repository failure degrades to the fallback
// list.
func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, bool) {
	if s.cache != nil {
		if cats, err := s.cache.GetCategories(ctx); err == nil {
			return cats, false
		}
	}

	rows, err := s.categories.List(ctx, true)
	if err != nil {
		log.Error().Err(err).Msg("category list failed, serving fallback")
		return fallbackCategories(), true
	}
	cats := mapCategories(rows)

	if s.cache != nil {
		if err := s.cache.SetCategories(ctx, cats); err != nil {
			log.Warn().Err(err).Msg("category cache write failed")
		}
	}
	return cats, false
}

// GetCategoryBySlug returns the category for a slug, or nil when no category
// matches. A backend failure also yields nil after logging.
func (s *CatalogService) GetCategoryBySlug(ctx context.Context, slug string) *models.Category {
	row, err := s.categories.GetBySlug(ctx, slug)
	if err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("category lookup failed")
		return nil
	}
	if row == nil {
		return nil
	}
	c := row.ToCategory()
	return &c
}

// --- Admin operations: errors surface to the caller. ---

// CreateProduct validates and inserts a product.
func (s *CatalogService) CreateProduct(ctx context.Context, row *models.ProductRow) (*models.AdminProduct, error) {
	if row.Status == "" {
		row.Status = models.ProductStatusDraft
	}
	if !row.Status.Valid() {
		return nil, utils.ErrInvalidStatus
	}
	if row.Stock < 0 {
		row.Stock = 0
	}
	stored, err := s.products.Create(ctx, row)
	if err != nil {
		return nil, err
	}
	p := stored.ToAdminProduct()
	return &p, nil
}

// ListAdminProducts returns all products with admin fields, surfacing errors.
func (s *CatalogService) ListAdminProducts(ctx context.Context, f models.ProductFilter) ([]models.AdminProduct, error) {
	rows, err := s.products.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]models.AdminProduct, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToAdminProduct())
	}
	return out, nil
}

// GetAdminProduct returns a product with admin fields.
func (s *CatalogService) GetAdminProduct(ctx context.Context, id int) (*models.AdminProduct, error) {
	row, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, utils.ErrNotFound
	}
	p := row.ToAdminProduct()
	return &p, nil
}

// UpdateProduct applies a sparse patch; omitted fields are left untouched.
func (s *CatalogService) UpdateProduct(ctx context.Context, id int, patch models.ProductPatch) (*models.AdminProduct, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, utils.ErrInvalidStatus
	}
	row, err := s.products.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, utils.ErrNotFound
	}
	p := row.ToAdminProduct()
	return &p, nil
}

// DeleteProduct removes a product.
func (s *CatalogService) DeleteProduct(ctx context.Context, id int) error {
	if err := s.products.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return utils.ErrNotFound
		}
		return err
	}
	return nil
}

// ListAllCategories returns every category including inactive ones, for the
// admin panel. Errors surface.
func (s *CatalogService) ListAllCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := s.categories.List(ctx, false)
	if err != nil {
		return nil, err
	}
	return mapCategories(rows), nil
}

// CreateCategory validates and inserts a category.
func (s *CatalogService) CreateCategory(ctx context.Context, row *models.CategoryRow) (*models.Category, error) {
	existing, err := s.categories.GetBySlug(ctx, row.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.ErrDuplicateSlug
	}
	stored, err := s.categories.Create(ctx, row)
	if err != nil {
		return nil, err
	}
	s.invalidateCategories(ctx)
	c := stored.ToCategory()
	return &c, nil
}

// UpdateCategory applies a sparse patch; omitted fields are left untouched.
func (s *CatalogService) UpdateCategory(ctx context.Context, id int, patch models.CategoryPatch) (*models.Category, error) {
	if patch.Slug != nil {
		existing, err := s.categories.GetBySlug(ctx, *patch.Slug)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, utils.ErrDuplicateSlug
		}
	}
	row, err := s.categories.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, utils.ErrNotFound
	}
	s.invalidateCategories(ctx)
	c := row.ToCategory()
	return &c, nil
}

// DeleteCategory removes a category.
func (s *CatalogService) DeleteCategory(ctx context.Context, id int) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return utils.ErrNotFound
		}
		return err
	}
	s.invalidateCategories(ctx)
	return nil
}

func (s *CatalogService) invalidateCategories(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateCategories(ctx); err != nil {
		log.Warn().Err(err).Msg("category cache invalidation failed")
	}
}

func mapProducts(rows []models.ProductRow) []models.Product {
	out := make([]models.Product, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToProduct())
	}
	return out
}

func mapCategories(rows []models.CategoryRow) []models.Category {
	out := make([]models.Category, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToCategory())
	}
	return out
}
