package service

import (
	"context"
	"errors"
	"testing"

	"github.com/tehnoshop/storefront-api/internal/models"
	"github.com/tehnoshop/storefront-api/internal/utils"
)

type fakeProductStore struct {
	rows []models.ProductRow
	err  error
}

func (f *fakeProductStore) List(context.Context, models.ProductFilter) ([]models.ProductRow, error) {
	return f.rows, f.err
}

func (f *fakeProductStore) GetByID(_ context.Context, id int) (*models.ProductRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.rows {
		if f.rows[i].ID == id {
			return &f.rows[i], nil
		}
	}
	return nil, nil
}

func (f *fakeProductStore) Search(context.Context, string) ([]models.ProductRow, error) {
	return f.rows, f.err
}

func (f *fakeProductStore) GetRelated(context.Context, int, int) ([]models.ProductRow, error) {
	return f.rows, f.err
}

func (f *fakeProductStore) Create(_ context.Context, p *models.ProductRow) (*models.ProductRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	p.ID = 1
	return p, nil
}

func (f *fakeProductStore) Update(_ context.Context, id int, _ models.ProductPatch) (*models.ProductRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.GetByID(context.Background(), id)
}

func (f *fakeProductStore) Delete(context.Context, int) error { return f.err }

type fakeCategoryStore struct {
	rows []models.CategoryRow
	err  error
}

func (f *fakeCategoryStore) List(context.Context, bool) ([]models.CategoryRow, error) {
	return f.rows, f.err
}

func (f *fakeCategoryStore) GetBySlug(_ context.Context, slug string) (*models.CategoryRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.rows {
		if f.rows[i].Slug == slug {
			return &f.rows[i], nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryStore) GetByID(_ context.Context, id int) (*models.CategoryRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.rows {
		if f.rows[i].ID == id {
			return &f.rows[i], nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryStore) Create(_ context.Context, c *models.CategoryRow) (*models.CategoryRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	c.ID = 1
	return c, nil
}

func (f *fakeCategoryStore) Update(_ context.Context, id int, _ models.CategoryPatch) (*models.CategoryRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.GetByID(context.Background(), id)
}

func (f *fakeCategoryStore) Delete(context.Context, int) error { return f.err }

func newCatalog(products *fakeProductStore, categories *fakeCategoryStore) *CatalogService {
	return NewCatalogService(products, categories, nil)
}

func TestListProductsFallsBackOnError(t *testing.T) {
	svc := newCatalog(&fakeProductStore{err: errors.New("connection refused")}, &fakeCategoryStore{})

	products, degraded := svc.ListProducts(context.Background(), models.ProductFilter{})

	if !degraded {
		t.Fatal("expected degraded flag on repository failure")
	}
	if len(products) == 0 {
		t.Fatal("fallback list must not be empty")
	}
}

func TestListProductsEmptyIsNotDegraded(t *testing.T) {
	svc := newCatalog(&fakeProductStore{rows: []models.ProductRow{}}, &fakeCategoryStore{})

	products, degraded := svc.ListProducts(context.Background(), models.ProductFilter{})

	if degraded {
		t.Fatal("an empty table is not a degraded response")
	}
	if len(products) != 0 {
		t.Fatalf("expected empty list, got %d items", len(products))
	}
}

func TestListProductsMapsBilingualFields(t *testing.T) {
	old := 3990.0
	store := &fakeProductStore{rows: []models.ProductRow{{
		ID:       7,
		TitleSr:  "Punjač",
		TitleEn:  "Charger",
		Price:    2990,
		OldPrice: &old,
		Category: "chargers",
		IsOnSale: true,
	}}}
	svc := newCatalog(store, &fakeCategoryStore{})

	products, _ := svc.ListProducts(context.Background(), models.ProductFilter{})

	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}
	p := products[0]
	if p.Title.Sr != "Punjač" || p.Title.En != "Charger" {
		t.Fatalf("bilingual title not assembled: %+v", p.Title)
	}
	if p.OldPrice == nil || *p.OldPrice != 3990 {
		t.Fatalf("old price lost in mapping: %v", p.OldPrice)
	}
}

func TestSearchProductsDegradesToEmpty(t *testing.T) {
	svc := newCatalog(&fakeProductStore{err: errors.New("timeout")}, &fakeCategoryStore{})

	products := svc.SearchProducts(context.Background(), "punjac")

	if products == nil {
		t.Fatal("search must return an empty slice, not nil")
	}
	if len(products) != 0 {
		t.Fatalf("expected empty result, got %d", len(products))
	}
}

func TestGetCategoryBySlugNotFound(t *testing.T) {
	svc := newCatalog(&fakeProductStore{}, &fakeCategoryStore{rows: []models.CategoryRow{{ID: 1, Slug: "audio"}}})

	if c := svc.GetCategoryBySlug(context.Background(), "nonexistent-slug"); c != nil {
		t.Fatalf("expected nil for unknown slug, got %+v", c)
	}
	if c := svc.GetCategoryBySlug(context.Background(), "audio"); c == nil {
		t.Fatal("expected category for known slug")
	}
}

func TestGetCategoryBySlugAbsorbsBackendFailure(t *testing.T) {
	svc := newCatalog(&fakeProductStore{}, &fakeCategoryStore{err: errors.New("connection refused")})

	// Backend failure and missing row both render as "not found".
	if c := svc.GetCategoryBySlug(context.Background(), "audio"); c != nil {
		t.Fatalf("expected nil on backend failure, got %+v", c)
	}
}

func TestListCategoriesFallsBackOnError(t *testing.T) {
	svc := newCatalog(&fakeProductStore{}, &fakeCategoryStore{err: errors.New("connection refused")})

	categories, degraded := svc.ListCategories(context.Background())

	if !degraded {
		t.Fatal("expected degraded flag on repository failure")
	}
	if len(categories) == 0 {
		t.Fatal("fallback categories must not be empty")
	}
}

func TestCreateCategoryRejectsDuplicateSlug(t *testing.T) {
	svc := newCatalog(&fakeProductStore{}, &fakeCategoryStore{rows: []models.CategoryRow{{ID: 1, Slug: "audio"}}})

	_, err := svc.CreateCategory(context.Background(), &models.CategoryRow{Slug: "audio"})
	if !errors.Is(err, utils.ErrDuplicateSlug) {
		t.Fatalf("expected ErrDuplicateSlug, got %v", err)
	}
}

func TestUpdateCategoryAllowsOwnSlug(t *testing.T) {
	store := &fakeCategoryStore{rows: []models.CategoryRow{{ID: 1, Slug: "audio"}}}
	svc := newCatalog(&fakeProductStore{}, store)

	slug := "audio"
	if _, err := svc.UpdateCategory(context.Background(), 1, models.CategoryPatch{Slug: &slug}); err != nil {
		t.Fatalf("updating a category with its own slug must succeed, got %v", err)
	}
}

func TestCreateProductDefaultsToDraft(t *testing.T) {
	svc := newCatalog(&fakeProductStore{}, &fakeCategoryStore{})

	p, err := svc.CreateProduct(context.Background(), &models.ProductRow{TitleSr: "X", TitleEn: "X", Price: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Status != models.ProductStatusDraft {
		t.Fatalf("expected draft default, got %s", p.Status)
	}
}

func TestCreateProductRejectsUnknownStatus(t *testing.T) {
	svc := newCatalog(&fakeProductStore{}, &fakeCategoryStore{})

	_, err := svc.CreateProduct(context.Background(), &models.ProductRow{Status: "archived"})
	if !errors.Is(err, utils.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestUpdateProductNotFound(t *testing.T) {
	svc := newCatalog(&fakeProductStore{}, &fakeCategoryStore{})

	_, err := svc.UpdateProduct(context.Background(), 99, models.ProductPatch{})
	if !errors.Is(err, utils.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
