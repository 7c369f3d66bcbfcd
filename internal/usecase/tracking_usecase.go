package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/cacupatiago-web/frotaapp-sub000/internal/domain/entity"
)

// TrackingState is the externally visible state of one tracking activation.
type TrackingState struct {
	Position  *entity.LiveSample `json:"position,omitempty"`
	IsLoading bool               `json:"is_loading"`
	Error     string             `json:"error,omitempty"`
}

// TrackingUsecase runs the live-position state machine for trip sessions.
type TrackingUsecase interface {
	// Activate starts continuous sampling for the session's device. A fresh
	// activation replaces any previous one and re-arms the one-shot IP
	// fallback guard.
	Activate(ctx context.Context, sessionID uuid.UUID, deviceID string) error

	// Deactivate cancels the sampling subscription and discards the
	// accumulated trajectory. Results of in-flight lookups arriving after
	// deactivation are dropped.
	Deactivate(sessionID uuid.UUID) error

	// State returns the latest position, loading flag and terminal error of
	// the session's current activation.
	State(sessionID uuid.UUID) (*TrackingState, error)

	// Trajectory returns the ordered samples of the current activation. Only
	// sensor-sourced samples count; if none has ever arrived, the unfiltered
	// sequence is returned so the trajectory is never artificially empty.
	Trajectory(sessionID uuid.UUID) ([]entity.LiveSample, error)
}
