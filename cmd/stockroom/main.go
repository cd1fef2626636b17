package main

import (
	"context"
	"log/slog"
	"os"

	"stockroom/config"
	"stockroom/internal/delivery"
	"stockroom/internal/delivery/http"
	"stockroom/internal/delivery/http/middleware"
	"stockroom/internal/delivery/http/router/handler"
	"stockroom/internal/infra/auth/github"
	logs "stockroom/internal/infra/log"
	"stockroom/internal/infra/persistence/mongo"
	"stockroom/internal/usecase/impl"

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
		mongo.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			mongo.NewItemRepository,
			mongo.NewOutOfStockRepository,
			mongo.NewSessionRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			github.NewOAuthService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewItemService,
			impl.NewOutOfStockService,
			impl.NewAuthService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewItemHandler,
			handler.NewOutOfStockHandler,
			handler.NewAuthHandler,
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
