package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/farhanadit/go-user-api/internal/container"
	handlers "github.com/farhanadit/go-user-api/internal/interface/http"
	"github.com/farhanadit/go-user-api/internal/interface/middleware"
)

// UserModule wires the user CRUD routes:
//
//	GET    /api/users
//	GET    /api/users/:id
//	POST   /api/users
//	PUT    /api/users/:id
//	DELETE /api/users/:id
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	// Reads get a softer per-IP limit than writes; private clients bypass both.
	readLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	writeLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())

	users := rg.Group("/users")
	{
		users.GET("", readLimiter, m.Handler.List)
		users.GET("/:id", readLimiter, m.Handler.Get)
		users.POST("", writeLimiter, m.Handler.Create)
		users.PUT("/:id", writeLimiter, m.Handler.Update)
		users.DELETE("/:id", writeLimiter, m.Handler.Delete)
	}
}
