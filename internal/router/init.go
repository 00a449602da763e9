package router

import (
	userapp "github.com/fgcplatform/identity/internal/application"
	"github.com/fgcplatform/identity/internal/container"
	"github.com/fgcplatform/identity/internal/infrastructure/eventsink"
	pginfra "github.com/fgcplatform/identity/internal/infrastructure/postgres"
	handlers "github.com/fgcplatform/identity/internal/interface/http"
	"github.com/fgcplatform/identity/internal/router/modules"
)

// InitModules builds the service graph from the container singletons and
// registers every feature module. Called once during startup.
func InitModules(r *Registry) {
	repo := pginfra.NewUserRepository(container.GetPGPool())
	uniq := pginfra.NewEmailUniquenessChecker(repo)

	logger := container.GetLogger()
	sinks := eventsink.Multi{eventsink.NewLogSink(logger)}
	if pub := container.GetRabbitPub(); pub != nil {
		sinks = append(sinks, eventsink.NewRabbitSink(pub, logger))
	}

	svc := userapp.NewService(
		repo,
		uniq,
		sinks,
		container.GetTokens(),
		container.GetRedis(),
		logger,
		container.GetES(),
		container.GetConfig().ESUsersIndex,
	)

	tokens := container.GetTokens()
	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(svc, logger), tokens))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(svc, logger), tokens))
	r.Add(modules.NewAdminModule(handlers.NewAdminHandler(svc, logger), tokens))
}
