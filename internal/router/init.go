package router

import (
	userapp "github.com/farhanadit/go-user-api/internal/application"
	"github.com/farhanadit/go-user-api/internal/container"
	"github.com/farhanadit/go-user-api/internal/domain/entity"
	mysqlinfra "github.com/farhanadit/go-user-api/internal/infrastructure/mysql"
	handlers "github.com/farhanadit/go-user-api/internal/interface/http"
	"github.com/farhanadit/go-user-api/internal/router/modules"
)

// InitModules wires all feature modules against the container singletons and
// adds them to the registry. Called once during startup.
func InitModules(r *Registry) {
	repo := mysqlinfra.NewUserRepository(container.GetDB())
	svc := userapp.NewService(repo, entity.UUIDGenerator{}, container.GetLogger())
	handler := handlers.NewUserHandler(svc, container.GetLogger())

	r.Add(modules.NewUserModule(handler))
	r.Add(modules.NewHealthModule(container.GetDB(), container.GetRedis()))
	if cfg := container.GetConfig(); cfg == nil || cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
