package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cacupatiago-web/frotaapp-sub000/internal/domain/entity"
	domainerrors "github.com/cacupatiago-web/frotaapp-sub000/internal/domain/errors"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/usecase"
)

type fakeTrackingUsecase struct {
	state      *usecase.TrackingState
	trajectory []entity.LiveSample
	err        error

	activatedDevice string
}

func (f *fakeTrackingUsecase) Activate(_ context.Context, _ uuid.UUID, deviceID string) error {
	f.activatedDevice = deviceID

	return f.err
}

func (f *fakeTrackingUsecase) Deactivate(uuid.UUID) error {
	return f.err
}

func (f *fakeTrackingUsecase) State(uuid.UUID) (*usecase.TrackingState, error) {
	return f.state, f.err
}

func (f *fakeTrackingUsecase) Trajectory(uuid.UUID) ([]entity.LiveSample, error) {
	return f.trajectory, f.err
}

func trackingTestHandler(uc *fakeTrackingUsecase) *TrackingHandler {
	return &TrackingHandler{
		trackingUC: uc,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func withSessionID(c echo.Context, sessionID string) {
	c.SetPath("/trips/map/:sessionID/tracking")
	c.SetParamNames("sessionID")
	c.SetParamValues(sessionID)
}

func TestTrackingHandler_Activate(t *testing.T) {
	uc := &fakeTrackingUsecase{}
	handler := trackingTestHandler(uc)

	c, rec := newTestContext(http.MethodPost, "/", `{"device_id":"viatura-07"}`)
	withSessionID(c, uuid.New().String())

	require.NoError(t, handler.Activate(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "viatura-07", uc.activatedDevice)
}

func TestTrackingHandler_Activate_MissingDeviceID(t *testing.T) {
	uc := &fakeTrackingUsecase{}
	handler := trackingTestHandler(uc)

	c, rec := newTestContext(http.MethodPost, "/", `{}`)
	withSessionID(c, uuid.New().String())

	require.NoError(t, handler.Activate(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, uc.activatedDevice)
}

func TestTrackingHandler_State(t *testing.T) {
	sample := &entity.LiveSample{
		Lat:        -8.8383,
		Lng:        13.2344,
		Accuracy:   12,
		Source:     entity.SourceGPS,
		RecordedAt: time.Now(),
	}
	handler := trackingTestHandler(&fakeTrackingUsecase{
		state: &usecase.TrackingState{Position: sample},
	})

	c, rec := newTestContext(http.MethodGet, "/", "")
	withSessionID(c, uuid.New().String())

	require.NoError(t, handler.State(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "13.2344")
}

func TestTrackingHandler_State_UnknownSession(t *testing.T) {
	handler := trackingTestHandler(&fakeTrackingUsecase{err: domainerrors.ErrTrackingSessionNotFound})

	c, _ := newTestContext(http.MethodGet, "/", "")
	withSessionID(c, uuid.New().String())

	err := handler.State(c)
	assert.ErrorIs(t, err, domainerrors.ErrTrackingSessionNotFound)
}

func TestTrackingHandler_Trajectory(t *testing.T) {
	handler := trackingTestHandler(&fakeTrackingUsecase{
		trajectory: []entity.LiveSample{
			{Lat: -8.83, Lng: 13.23, Source: entity.SourceGPS},
			{Lat: -8.84, Lng: 13.24, Source: entity.SourceGPS},
		},
	})

	c, rec := newTestContext(http.MethodGet, "/", "")
	withSessionID(c, uuid.New().String())

	require.NoError(t, handler.Trajectory(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "-8.84")
}

func TestTrackingHandler_Deactivate_InvalidSessionID(t *testing.T) {
	handler := trackingTestHandler(&fakeTrackingUsecase{})

	c, _ := newTestContext(http.MethodDelete, "/", "")
	withSessionID(c, "not-a-uuid")

	err := handler.Deactivate(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}
