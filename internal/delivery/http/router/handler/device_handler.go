package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/cacupatiago-web/frotaapp-sub000/internal/delivery/http/response"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/domain/service"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/infra/sensor"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	Hub    *sensor.Hub
	Logger *slog.Logger
}

// DeviceHandler ingests raw position reports from vehicle devices and feeds
// them into the sampling hub.
type DeviceHandler struct {
	hub    *sensor.Hub
	logger *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		hub:    params.Hub,
		logger: params.Logger,
	}
}

// ReportFixRequest represents a raw position report from a device
type ReportFixRequest struct {
	Lat        float64    `json:"lat" validate:"min=-90,max=90"`
	Lng        float64    `json:"lng" validate:"min=-180,max=180"`
	Accuracy   float64    `json:"accuracy" validate:"min=0"`
	RecordedAt *time.Time `json:"recorded_at,omitempty"`
}

// ReportFailureRequest represents a sensor failure report from a device
type ReportFailureRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// ReportFix handles a position report from a device
func (h *DeviceHandler) ReportFix(c echo.Context) error {
	deviceID := c.Param("deviceID")
	if deviceID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Device ID is required")
	}

	var req ReportFixRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid fix input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	fix := service.Fix{
		Lat:      req.Lat,
		Lng:      req.Lng,
		Accuracy: req.Accuracy,
	}
	if req.RecordedAt != nil {
		fix.At = *req.RecordedAt
	}

	h.hub.ReportFix(deviceID, fix)

	return response.Success(c, http.StatusAccepted, nil, "Fix accepted")
}

// ReportFailure handles a sensor failure report from a device
func (h *DeviceHandler) ReportFailure(c echo.Context) error {
	deviceID := c.Param("deviceID")
	if deviceID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Device ID is required")
	}

	var req ReportFailureRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid failure input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	h.hub.ReportFailure(deviceID, req.Reason)

	return response.Success(c, http.StatusAccepted, nil, "Failure recorded")
}
