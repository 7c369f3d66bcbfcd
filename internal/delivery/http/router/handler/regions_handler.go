package handler

import (
	"log/slog"
	"net/http"

	"github.com/cacupatiago-web/frotaapp-sub000/internal/delivery/http/response"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RegionsHandlerParams holds dependencies for RegionsHandler, injected by Fx.
type RegionsHandlerParams struct {
	fx.In

	RegionsUC usecase.RegionsUsecase
	Logger    *slog.Logger
}

// RegionsHandler serves the cascading location picker data.
type RegionsHandler struct {
	regionsUC usecase.RegionsUsecase
	logger    *slog.Logger
}

// NewRegionsHandler is the constructor for RegionsHandler
func NewRegionsHandler(params RegionsHandlerParams) *RegionsHandler {
	return &RegionsHandler{
		regionsUC: params.RegionsUC,
		logger:    params.Logger,
	}
}

// ComposeLabelRequest represents the picker selections to turn into a label
type ComposeLabelRequest struct {
	Province     string `json:"province" validate:"required"`
	Municipality string `json:"municipality"`
	Neighborhood string `json:"neighborhood"`
}

// ListProvinces handles listing the top level of the hierarchy
func (h *RegionsHandler) ListProvinces(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.regionsUC.Provinces(), "")
}

// ListMunicipalities handles listing the municipalities of a province
func (h *RegionsHandler) ListMunicipalities(c echo.Context) error {
	municipalities, err := h.regionsUC.Municipalities(c.Param("province"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, municipalities, "")
}

// ListNeighborhoods handles listing the neighborhoods of a municipality
func (h *RegionsHandler) ListNeighborhoods(c echo.Context) error {
	neighborhoods, err := h.regionsUC.Neighborhoods(c.Param("province"), c.Param("municipality"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, neighborhoods, "")
}

// ComposeLabel handles building a location label from picker selections
func (h *RegionsHandler) ComposeLabel(c echo.Context) error {
	var req ComposeLabelRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid label input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	label, err := h.regionsUC.ComposeLabel(req.Province, req.Municipality, req.Neighborhood)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{"label": label}, "")
}
