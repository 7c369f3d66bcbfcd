package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/cacupatiago-web/frotaapp-sub000/config"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/delivery"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/delivery/http"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/delivery/http/middleware"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/delivery/http/router/handler"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/domain/service"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/infra/auth"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/infra/geocode"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/infra/geodata"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/infra/iplocate"
	logs "github.com/cacupatiago-web/frotaapp-sub000/internal/infra/log"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/infra/maprender"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/infra/qrcode"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/infra/routing/osrm"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/infra/sensor"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/usecase"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/usecase/impl"

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
		sensor.NewHub,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			newGeocoder,
			newRoutePlanner,
			newIPLocator,
			newQRCodeService,
			newSurfaceFactory,
			newPositionSensor,
		),
	)
}

func newGeocoder(cfg *config.Config, logger *slog.Logger) service.Geocoder {
	return geocode.NewClient(cfg.Geocode, logger)
}

func newRoutePlanner(cfg *config.Config, logger *slog.Logger) service.RoutePlanner {
	return osrm.NewClient(cfg.Routing, logger)
}

func newIPLocator(cfg *config.Config, logger *slog.Logger) service.IPLocator {
	return iplocate.NewClient(cfg.IPLocate, logger)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func newSurfaceFactory(cfg *config.Config) service.MapSurfaceFactory {
	return maprender.NewViewSurfaceFactory(cfg.Map)
}

func newPositionSensor(hub *sensor.Hub) service.PositionSensor {
	return hub
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			newTrackingService,
			newRegionsService,
			impl.NewTripMapService,
		),
	)
}

func newTrackingService(
	positionSensor service.PositionSensor,
	locator service.IPLocator,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.TrackingUsecase {
	return impl.NewTrackingService(positionSensor, locator, cfg.Tracking, logger)
}

func newRegionsService() usecase.RegionsUsecase {
	return impl.NewRegionsService(geodata.Provinces())
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewRegionsHandler,
			handler.NewTripMapHandler,
			handler.NewTrackingHandler,
			handler.NewDeviceHandler,
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
