package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type fakeExecutor struct {
	rows   []map[string]interface{}
	err    error
	calls  int
	query  string
	params []interface{}
}

func (f *fakeExecutor) Query(_ context.Context, query string, params []interface{}) ([]map[string]interface{}, error) {
	f.calls++
	f.query = query
	f.params = params
	return f.rows, f.err
}

func newTestRouter(exec Executor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(exec)
	r := gin.New()
	r.Any("/api/db", h.MethodGate(), h.Execute)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, "/api/db", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not JSON: %v; body=%s", err, w.Body.String())
	}
	return w, resp
}

func TestDenylistRejection(t *testing.T) {
	queries := []string{
		"DROP TABLE products",
		"drop table products",
		"SELECT 1; dRoP TABLE users",
		"TRUNCATE products",
		"truncate banners",
		"ALTER TABLE products ADD COLUMN x int",
		"GRANT ALL ON products TO public",
		"revoke select on products from public",
	}

	for _, q := range queries {
		t.Run(q, func(t *testing.T) {
			exec := &fakeExecutor{}
			r := newTestRouter(exec)
			w, resp := doRequest(t, r, http.MethodPost, `{"query":`+mustJSON(q)+`}`)

			if w.Code != http.StatusInternalServerError {
				t.Fatalf("expected 500, got %d", w.Code)
			}
			if resp["success"] != false {
				t.Fatalf("expected success=false, got %v", resp["success"])
			}
			if resp["error"] != "Forbidden operation" {
				t.Fatalf("expected Forbidden operation, got %v", resp["error"])
			}
			if exec.calls != 0 {
				t.Fatalf("executor must never be reached, got %d calls", exec.calls)
			}
		})
	}
}

func TestMethodGate(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodPatch} {
		t.Run(method, func(t *testing.T) {
			exec := &fakeExecutor{}
			r := newTestRouter(exec)
			w, resp := doRequest(t, r, method, `{"query":"SELECT 1"}`)

			if w.Code != http.StatusMethodNotAllowed {
				t.Fatalf("expected 405, got %d", w.Code)
			}
			if resp["error"] != "Method not allowed" {
				t.Fatalf("expected Method not allowed, got %v", resp["error"])
			}
			if exec.calls != 0 {
				t.Fatalf("executor must never be reached, got %d calls", exec.calls)
			}
		})
	}
}

func TestValidationGate(t *testing.T) {
	bodies := map[string]string{
		"missing query":    `{"params":[1]}`,
		"empty query":      `{"query":""}`,
		"blank query":      `{"query":"   "}`,
		"non-string query": `{"query":42}`,
		"malformed json":   `{"query": "SELECT`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			exec := &fakeExecutor{}
			r := newTestRouter(exec)
			w, resp := doRequest(t, r, http.MethodPost, body)

			if w.Code != http.StatusInternalServerError {
				t.Fatalf("expected 500, got %d", w.Code)
			}
			if resp["error"] != "Invalid query" {
				t.Fatalf("expected Invalid query, got %v", resp["error"])
			}
			if exec.calls != 0 {
				t.Fatalf("executor must never be reached, got %d calls", exec.calls)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	exec := &fakeExecutor{
		rows: []map[string]interface{}{
			{"id": 1, "title_en": "USB-C Charger 20W"},
			{"id": 2, "title_en": "Wireless Earbuds"},
			{"id": 3, "title_en": "Screen Protector"},
		},
	}
	r := newTestRouter(exec)
	w, resp := doRequest(t, r, http.MethodPost,
		`{"query":"SELECT id, title_en FROM products WHERE category = $1","params":["chargers"]}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if resp["success"] != true {
		t.Fatalf("expected success=true, got %v", resp["success"])
	}
	data, ok := resp["data"].([]interface{})
	if !ok {
		t.Fatalf("data is not an array: %T", resp["data"])
	}
	if len(data) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(data))
	}
	first, ok := data[0].(map[string]interface{})
	if !ok {
		t.Fatalf("row is not an object: %T", data[0])
	}
	if first["title_en"] != "USB-C Charger 20W" {
		t.Fatalf("unexpected row content: %v", first)
	}

	if exec.calls != 1 {
		t.Fatalf("expected exactly one executor call, got %d", exec.calls)
	}
	if exec.query != "SELECT id, title_en FROM products WHERE category = $1" {
		t.Fatalf("query not passed through: %q", exec.query)
	}
	if len(exec.params) != 1 || exec.params[0] != "chargers" {
		t.Fatalf("params not passed through: %v", exec.params)
	}
}

func TestEmptyResultIsArray(t *testing.T) {
	exec := &fakeExecutor{rows: []map[string]interface{}{}}
	r := newTestRouter(exec)
	w, _ := doRequest(t, r, http.MethodPost, `{"query":"SELECT 1 WHERE false"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"data":[]`) {
		t.Fatalf("empty result must serialize as [], body=%s", w.Body.String())
	}
}

func TestExecutionError(t *testing.T) {
	exec := &fakeExecutor{err: errors.New(`pq: relation "nope" does not exist`)}
	r := newTestRouter(exec)
	w, resp := doRequest(t, r, http.MethodPost, `{"query":"SELECT * FROM nope"}`)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if resp["success"] != false {
		t.Fatalf("expected success=false, got %v", resp["success"])
	}
	if !strings.Contains(resp["error"].(string), "does not exist") {
		t.Fatalf("driver message not surfaced: %v", resp["error"])
	}
}

func TestForbiddenKeywordScan(t *testing.T) {
	if kw := forbiddenKeyword("SELECT * FROM products"); kw != "" {
		t.Fatalf("plain select flagged as %q", kw)
	}
	// Substring semantics: the guard is textual, so a column literally named
	// like a keyword trips it too.
	if kw := forbiddenKeyword("SELECT dropped_at FROM orders"); kw != "DROP" {
		t.Fatalf("expected substring match on DROP, got %q", kw)
	}
}

func mustJSON(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
