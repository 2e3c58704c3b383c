package main

import (
	"context"
	"log/slog"
	"os"

	"atlas/config"
	"atlas/internal/delivery"
	"atlas/internal/delivery/http"
	"atlas/internal/delivery/http/middleware"
	"atlas/internal/delivery/http/router/handler"
	"atlas/internal/domain/repository"
	"atlas/internal/domain/service"
	"atlas/internal/infra/auth"
	"atlas/internal/infra/cache"
	"atlas/internal/infra/environment"
	logs "atlas/internal/infra/log"
	"atlas/internal/infra/persistence/postgres"
	"atlas/internal/infra/pubsub"
	"atlas/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		cache.New,
		environment.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewPreferenceRepository,
			asPreferenceCache,
		),
	)
}

// asPreferenceCache binds the SQLite cache to the domain port.
func asPreferenceCache(c *cache.SQLiteCache) repository.PreferenceCache {
	return c
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			pubsub.NewEventPublisher,
			asEnvironment,
		),
	)
}

// asEnvironment binds the in-memory environment state to the domain port.
func asEnvironment(state *environment.State) service.Environment {
	return state
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCustomizationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCustomizationHandler,
			handler.NewEnvironmentHandler,
			handler.NewHealthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
