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

// TripMapHandlerParams holds dependencies for TripMapHandler, injected by Fx.
type TripMapHandlerParams struct {
	fx.In

	TripMapUC usecase.TripMapUsecase
	Logger    *slog.Logger
}

// TripMapHandler holds dependencies for trip map session handlers
type TripMapHandler struct {
	tripMapUC usecase.TripMapUsecase
	logger    *slog.Logger
}

// NewTripMapHandler is the constructor for TripMapHandler
func NewTripMapHandler(params TripMapHandlerParams) *TripMapHandler {
	return &TripMapHandler{
		tripMapUC: params.TripMapUC,
		logger:    params.Logger,
	}
}

// PrepareTripMapRequest represents the request body for preparing a trip map
type PrepareTripMapRequest struct {
	Origem  string `json:"origem" validate:"required"`
	Destino string `json:"destino" validate:"required"`
}

// Prepare handles opening a new trip map session from two location labels
func (h *TripMapHandler) Prepare(c echo.Context) error {
	var req PrepareTripMapRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid trip map input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	view, err := h.tripMapUC.Prepare(c.Request().Context(), &usecase.TripMapInput{
		Origem:  req.Origem,
		Destino: req.Destino,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, view, "Trip map prepared")
}

// Snapshot handles reading the current composed state of a session
func (h *TripMapHandler) Snapshot(c echo.Context) error {
	sessionID, err := h.sessionID(c)
	if err != nil {
		return err
	}

	view, err := h.tripMapUC.Snapshot(c.Request().Context(), sessionID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, view, "")
}

// ShareQR handles rendering the session share link as a PNG QR code
func (h *TripMapHandler) ShareQR(c echo.Context) error {
	sessionID, err := h.sessionID(c)
	if err != nil {
		return err
	}

	png, err := h.tripMapUC.ShareQR(sessionID)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Release handles disposing a session's map surface
func (h *TripMapHandler) Release(c echo.Context) error {
	sessionID, err := h.sessionID(c)
	if err != nil {
		return err
	}

	if err := h.tripMapUC.Release(sessionID); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Trip map session released")
}

func (h *TripMapHandler) sessionID(c echo.Context) (uuid.UUID, error) {
	sessionID, err := uuid.Parse(c.Param("sessionID"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid session ID")
	}

	return sessionID, nil
}
