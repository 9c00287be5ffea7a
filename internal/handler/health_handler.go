package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/tehnoshop/storefront-api/internal/cache"
	"github.com/tehnoshop/storefront-api/internal/utils"
)

// HealthHandler reports liveness of the API and its backing stores.
type HealthHandler struct {
	db    *sqlx.DB
	redis *cache.RedisClient
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db *sqlx.DB, redis *cache.RedisClient) *HealthHandler {
	return &HealthHandler{db: db, redis: redis}
}

// GetHealth pings the database and cache.
// GET /v1/health
func (h *HealthHandler) GetHealth(c *gin.Context) {
	ctx := c.Request.Context()

	dbStatus := "ok"
	if err := h.db.PingContext(ctx); err != nil {
		dbStatus = "down"
	}

	redisStatus := "ok"
	if h.redis == nil {
		redisStatus = "disabled"
	} else if err := h.redis.Ping(ctx); err != nil {
		redisStatus = "down"
	}

	code := http.StatusOK
	if dbStatus == "down" {
		code = http.StatusServiceUnavailable
	}
	utils.Success(c, code, "Health check", gin.H{
		"database": dbStatus,
		"redis":    redisStatus,
	})
}
