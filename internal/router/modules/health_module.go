package modules

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/farhanadit/go-user-api/pkg/response"
)

// HealthModule reports liveness of the process and its backing services.
type HealthModule struct {
	DB    *sql.DB
	Redis *redis.Client
}

func NewHealthModule(db *sql.DB, rdb *redis.Client) *HealthModule {
	return &HealthModule{DB: db, Redis: rdb}
}

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/health", m.check)
}

func (m *HealthModule) check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	checks := gin.H{}

	if m.DB != nil {
		if err := m.DB.PingContext(ctx); err != nil {
			checks["mysql"] = "down"
			status = http.StatusServiceUnavailable
		} else {
			checks["mysql"] = "up"
		}
	}
	if m.Redis != nil {
		if err := m.Redis.Ping(ctx).Err(); err != nil {
			// Rate limiting fails open, so Redis being down degrades rather
			// than fails the service.
			checks["redis"] = "down"
		} else {
			checks["redis"] = "up"
		}
	}

	if status != http.StatusOK {
		response.Error(c, status, "degraded", checks)
		return
	}
	response.Success(c, http.StatusOK, checks, "ok")
}
