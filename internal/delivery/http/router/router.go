// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/cacupatiago-web/frotaapp-sub000/internal/delivery/http/middleware"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RegionsHandler  *handler.RegionsHandler
	TripMapHandler  *handler.TripMapHandler
	TrackingHandler *handler.TrackingHandler
	DeviceHandler   *handler.DeviceHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	regionsHandler  *handler.RegionsHandler
	tripMapHandler  *handler.TripMapHandler
	trackingHandler *handler.TrackingHandler
	deviceHandler   *handler.DeviceHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		regionsHandler:  params.RegionsHandler,
		tripMapHandler:  params.TripMapHandler,
		trackingHandler: params.TrackingHandler,
		deviceHandler:   params.DeviceHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Cascading picker data, public
	regionsGroup := e.Group("/regions")
	{
		regionsGroup.GET("/provinces", r.regionsHandler.ListProvinces)
		regionsGroup.GET("/provinces/:province/municipalities", r.regionsHandler.ListMunicipalities)
		regionsGroup.GET("/provinces/:province/municipalities/:municipality/neighborhoods", r.regionsHandler.ListNeighborhoods)
		regionsGroup.POST("/label", r.regionsHandler.ComposeLabel)
	}

	// Device position ingest, reported by the vehicle units themselves
	deviceGroup := e.Group("/devices")
	{
		deviceGroup.POST("/:deviceID/fix", r.deviceHandler.ReportFix)
		deviceGroup.POST("/:deviceID/failure", r.deviceHandler.ReportFailure)
	}

	// Trip map sessions require a platform access token
	tripGroup := e.Group("/trips/map")
	tripGroup.Use(r.authMiddleware.Authenticate)
	{
		tripGroup.POST("", r.tripMapHandler.Prepare)
		tripGroup.GET("/:sessionID", r.tripMapHandler.Snapshot)
		tripGroup.GET("/:sessionID/qr", r.tripMapHandler.ShareQR)
		tripGroup.DELETE("/:sessionID", r.tripMapHandler.Release)

		tripGroup.POST("/:sessionID/tracking", r.trackingHandler.Activate)
		tripGroup.DELETE("/:sessionID/tracking", r.trackingHandler.Deactivate)
		tripGroup.GET("/:sessionID/tracking", r.trackingHandler.State)
		tripGroup.GET("/:sessionID/tracking/trajectory", r.trackingHandler.Trajectory)
	}
}
