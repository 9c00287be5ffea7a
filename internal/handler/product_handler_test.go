package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tehnoshop/storefront-api/internal/models"
	"github.com/tehnoshop/storefront-api/internal/service"
	"github.com/tehnoshop/storefront-api/internal/utils"
)

type stubProductStore struct {
	rows []models.ProductRow
	err  error
}

func (s *stubProductStore) List(context.Context, models.ProductFilter) ([]models.ProductRow, error) {
	return s.rows, s.err
}

func (s *stubProductStore) GetByID(_ context.Context, id int) (*models.ProductRow, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.rows {
		if s.rows[i].ID == id {
			return &s.rows[i], nil
		}
	}
	return nil, nil
}

func (s *stubProductStore) Search(context.Context, string) ([]models.ProductRow, error) {
	return s.rows, s.err
}

func (s *stubProductStore) GetRelated(context.Context, int, int) ([]models.ProductRow, error) {
	return s.rows, s.err
}

func (s *stubProductStore) Create(_ context.Context, p *models.ProductRow) (*models.ProductRow, error) {
	return p, s.err
}

func (s *stubProductStore) Update(_ context.Context, id int, _ models.ProductPatch) (*models.ProductRow, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.GetByID(context.Background(), id)
}

func (s *stubProductStore) Delete(context.Context, int) error { return s.err }

type stubCategoryStore struct{}

func (stubCategoryStore) List(context.Context, bool) ([]models.CategoryRow, error) { return nil, nil }
func (stubCategoryStore) GetBySlug(context.Context, string) (*models.CategoryRow, error) {
	return nil, nil
}
func (stubCategoryStore) GetByID(context.Context, int) (*models.CategoryRow, error) {
	return nil, nil
}
func (stubCategoryStore) Create(_ context.Context, c *models.CategoryRow) (*models.CategoryRow, error) {
	return c, nil
}
func (stubCategoryStore) Update(context.Context, int, models.CategoryPatch) (*models.CategoryRow, error) {
	return nil, nil
}
func (stubCategoryStore) Delete(context.Context, int) error { return nil }

func newProductRouter(store *stubProductStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	catalog := service.NewCatalogService(store, stubCategoryStore{}, nil)
	h := NewProductHandler(catalog)

	r := gin.New()
	r.GET("/v1/products", h.GetProducts)
	r.GET("/v1/products/search", h.SearchProducts)
	r.GET("/v1/products/:id", h.GetProduct)
	r.GET("/v1/products/:id/related", h.GetRelatedProducts)
	return r
}

func doGet(t *testing.T, r *gin.Engine, path string) (*httptest.ResponseRecorder, utils.Response) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)

	var resp utils.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v\n%s", err, w.Body.String())
	}
	return w, resp
}

func TestGetProductsHappyPath(t *testing.T) {
	store := &stubProductStore{rows: []models.ProductRow{
		{ID: 1, TitleSr: "Punjač", TitleEn: "Charger", Price: 2990, Category: "chargers"},
		{ID: 2, TitleSr: "Slušalice", TitleEn: "Headphones", Price: 5990, Category: "audio"},
	}}
	r := newProductRouter(store)

	w, resp := doGet(t, r, "/v1/products")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !resp.Success || resp.Meta.Degraded {
		t.Fatalf("expected healthy success envelope, got %+v", resp)
	}
	items, ok := resp.Data.([]interface{})
	if !ok || len(items) != 2 {
		t.Fatalf("expected 2 products in data, got %v", resp.Data)
	}
}

func TestGetProductsDegradesOnStoreFailure(t *testing.T) {
	r := newProductRouter(&stubProductStore{err: errors.New("connection refused")})

	w, resp := doGet(t, r, "/v1/products")

	if w.Code != http.StatusOK {
		t.Fatalf("storefront list must stay 200 on backend failure, got %d", w.Code)
	}
	if !resp.Meta.Degraded {
		t.Fatal("expected degraded meta flag")
	}
	items, ok := resp.Data.([]interface{})
	if !ok || len(items) == 0 {
		t.Fatalf("expected fallback products, got %v", resp.Data)
	}
}

func TestGetProductNotFound(t *testing.T) {
	r := newProductRouter(&stubProductStore{})

	w, resp := doGet(t, r, "/v1/products/99")

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if resp.Error == nil || resp.Error.Code != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND error, got %+v", resp.Error)
	}
}

func TestGetProductInvalidID(t *testing.T) {
	r := newProductRouter(&stubProductStore{})

	w, resp := doGet(t, r, "/v1/products/abc")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if resp.Error == nil || resp.Error.Code != "INVALID_ID" {
		t.Fatalf("expected INVALID_ID error, got %+v", resp.Error)
	}
}

func TestSearchProductsEmptyTerm(t *testing.T) {
	// The store would error if reached; a blank term must short-circuit.
	r := newProductRouter(&stubProductStore{err: errors.New("must not be called")})

	w, resp := doGet(t, r, "/v1/products/search?q=%20%20")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	items, ok := resp.Data.([]interface{})
	if !ok || len(items) != 0 {
		t.Fatalf("expected empty result set, got %v", resp.Data)
	}
}

func TestGetRelatedProducts(t *testing.T) {
	store := &stubProductStore{rows: []models.ProductRow{
		{ID: 2, TitleSr: "Kabl", TitleEn: "Cable", Category: "chargers"},
	}}
	r := newProductRouter(store)

	w, resp := doGet(t, r, "/v1/products/1/related")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	items, ok := resp.Data.([]interface{})
	if !ok || len(items) != 1 {
		t.Fatalf("expected 1 related product, got %v", resp.Data)
	}
}
