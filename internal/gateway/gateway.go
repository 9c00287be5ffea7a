// Package gateway implements the parameterized-query endpoint: it forwards
// caller-supplied SQL with positional parameters to the database pool after a
// coarse keyword guard. The guard is a textual substring check, not a parser,
// so the endpoint is mounted behind admin authentication in the router.
package gateway

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/tehnoshop/storefront-api/internal/utils"
)

// denylist holds the forbidden keywords, matched case-insensitively anywhere
// in the query text. Presence of any of them rejects the request before it
// reaches the executor.
var denylist = []string{"DROP", "TRUNCATE", "ALTER", "GRANT", "REVOKE"}

// Executor runs a bound SQL query and returns the result rows as
// column-name to value maps.
type Executor interface {
	Query(ctx context.Context, query string, params []interface{}) ([]map[string]interface{}, error)
}

// Handler serves the query gateway endpoint.
type Handler struct {
	exec Executor
}

// NewHandler creates a gateway Handler backed by the given executor.
func NewHandler(exec Executor) *Handler {
	return &Handler{exec: exec}
}

// queryRequest is the gateway request body. Query is decoded loosely so a
// non-string value fails validation rather than JSON binding.
type queryRequest struct {
	Query  interface{}   `json:"query"`
	Params []interface{} `json:"params"`
}

// queryResponse is the gateway response body. Unlike the entity API this
// endpoint keeps its own minimal envelope.
type queryResponse struct {
	Success bool                     `json:"success"`
	Data    []map[string]interface{} `json:"data"`
	Error   string                   `json:"error,omitempty"`
}

// MethodGate rejects anything but POST with the gateway's 405 envelope. It
// runs ahead of authentication in the route chain so the verb contract holds
// for unauthenticated callers too.
func (h *Handler) MethodGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.AbortWithStatusJSON(http.StatusMethodNotAllowed, queryResponse{Success: false, Error: utils.ErrMethodNotAllowed.Error()})
			return
		}
		c.Next()
	}
}

// Execute handles the gateway endpoint. It is registered for every method so
// the 405 contract is owned here rather than by the router.
//
// Preconditions are checked in order: method, body shape, denylist. Every
// failure path resolves to {success:false, error}; nothing is thrown past
// this boundary.
func (h *Handler) Execute(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.JSON(http.StatusMethodNotAllowed, queryResponse{Success: false, Error: utils.ErrMethodNotAllowed.Error()})
		return
	}

	var req queryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, queryResponse{Success: false, Error: utils.ErrInvalidQuery.Error()})
		return
	}

	query, ok := req.Query.(string)
	if !ok || strings.TrimSpace(query) == "" {
		c.JSON(http.StatusInternalServerError, queryResponse{Success: false, Error: utils.ErrInvalidQuery.Error()})
		return
	}

	if keyword := forbiddenKeyword(query); keyword != "" {
		log.Warn().
			Str("request_id", c.GetString("request_id")).
			Str("keyword", keyword).
			Msg("gateway query rejected")
		c.JSON(http.StatusInternalServerError, queryResponse{Success: false, Error: utils.ErrForbiddenOperation.Error()})
		return
	}

	rows, err := h.exec.Query(c.Request.Context(), query, req.Params)
	if err != nil {
		log.Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Msg("gateway query failed")
		c.JSON(http.StatusInternalServerError, queryResponse{Success: false, Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, queryResponse{Success: true, Data: rows})
}

// forbiddenKeyword returns the first denylisted keyword contained in the
// query text, or empty when the query passes.
func forbiddenKeyword(query string) string {
	upper := strings.ToUpper(query)
	for _, kw := range denylist {
		if strings.Contains(upper, kw) {
			return kw
		}
	}
	return ""
}
