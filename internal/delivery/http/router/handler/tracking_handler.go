package handler

import (
	"log/slog"
	"net/http"

	"github.com/cacupatiago-web/frotaapp-sub000/internal/delivery/http/response"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TrackingHandlerParams holds dependencies for TrackingHandler, injected by Fx.
type TrackingHandlerParams struct {
	fx.In

	TrackingUC usecase.TrackingUsecase
	Logger     *slog.Logger
}

// TrackingHandler holds dependencies for live tracking handlers
type TrackingHandler struct {
	trackingUC usecase.TrackingUsecase
	logger     *slog.Logger
}

// NewTrackingHandler is the constructor for TrackingHandler
func NewTrackingHandler(params TrackingHandlerParams) *TrackingHandler {
	return &TrackingHandler{
		trackingUC: params.TrackingUC,
		logger:     params.Logger,
	}
}

// ActivateTrackingRequest represents the request body for activating tracking
type ActivateTrackingRequest struct {
	DeviceID string `json:"device_id" validate:"required"`
}

// Activate handles starting live tracking for a session
func (h *TrackingHandler) Activate(c echo.Context) error {
	sessionID, err := h.sessionID(c)
	if err != nil {
		return err
	}

	var req ActivateTrackingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tracking input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.trackingUC.Activate(c.Request().Context(), sessionID, req.DeviceID); err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, nil, "Tracking activated")
}

// Deactivate handles stopping live tracking for a session
func (h *TrackingHandler) Deactivate(c echo.Context) error {
	sessionID, err := h.sessionID(c)
	if err != nil {
		return err
	}

	if err := h.trackingUC.Deactivate(sessionID); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Tracking deactivated")
}

// State handles reading the latest tracking state of a session
func (h *TrackingHandler) State(c echo.Context) error {
	sessionID, err := h.sessionID(c)
	if err != nil {
		return err
	}

	state, err := h.trackingUC.State(sessionID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, state, "")
}

// Trajectory handles reading the accumulated trajectory of a session
func (h *TrackingHandler) Trajectory(c echo.Context) error {
	sessionID, err := h.sessionID(c)
	if err != nil {
		return err
	}

	trajectory, err := h.trackingUC.Trajectory(sessionID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, trajectory, "")
}

func (h *TrackingHandler) sessionID(c echo.Context) (uuid.UUID, error) {
	sessionID, err := uuid.Parse(c.Param("sessionID"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid session ID")
	}

	return sessionID, nil
}
