package handler

import (
	"database/sql"
	"net/http"

	"atlas/internal/delivery/http/response"
	"atlas/internal/infra/cache"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// HealthHandler reports service health including the persistence tiers. An
// unreachable remote store does not fail the check since the service runs in
// offline mode without it.
type HealthHandler struct {
	db    *gorm.DB
	cache *cache.SQLiteCache
}

// NewHealthHandler is the constructor for HealthHandler, injected by Fx.
func NewHealthHandler(db *gorm.DB, cache *cache.SQLiteCache) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

// Check reports the status of each persistence tier.
func (h *HealthHandler) Check(c echo.Context) error {
	ctx := c.Request().Context()

	status := map[string]string{
		"status":   "ok",
		"postgres": "ok",
		"cache":    "ok",
	}

	if sqlDB, err := h.dbConn(); err != nil {
		status["postgres"] = "unreachable"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		status["postgres"] = "unreachable"
	}

	if err := h.cache.Ping(ctx); err != nil {
		status["cache"] = "unreachable"
		status["status"] = "degraded"
	}

	return response.Success(c, http.StatusOK, status, "")
}

func (h *HealthHandler) dbConn() (*sql.DB, error) {
	if h.db == nil {
		return nil, errors.New("postgres not configured")
	}

	return h.db.DB()
}
