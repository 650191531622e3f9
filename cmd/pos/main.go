package main

import (
	"context"
	"log/slog"
	"os"

	"pos/config"
	"pos/internal/delivery"
	"pos/internal/delivery/api"
	apimiddleware "pos/internal/delivery/api/middleware"
	"pos/internal/delivery/api/router/handler"
	"pos/internal/infra/auth"
	"pos/internal/infra/backend"
	"pos/internal/infra/events"
	logs "pos/internal/infra/log"
	"pos/internal/infra/media"
	"pos/internal/infra/metrics"
	"pos/internal/infra/qrcode"
	"pos/internal/infra/storage"
	"pos/internal/usecase/impl"

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
		injectStorage(),
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
		metrics.New,
		events.NewBus,
	)
}

func injectStorage() fx.Option {
	return storage.Module
}

func injectService() fx.Option {
	return fx.Options(
		backend.Module,
		fx.Provide(
			auth.NewClaimsDecoder,
			qrcode.New,
			media.NewSource,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewCatalogService,
			impl.NewProductAdminService,
			impl.NewOrderService,
			impl.NewConfigurationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewSessionMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewCatalogHandler,
			handler.NewOrderHandler,
			handler.NewProductHandler,
			handler.NewConfigurationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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
