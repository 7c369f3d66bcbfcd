package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/cacupatiago-web/frotaapp-sub000/internal/domain/entity"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/infra/maprender"
)

// TripMapInput carries the two location labels chosen through the cascading
// picker. Labels arrive already validated as non-empty by the trip forms.
type TripMapInput struct {
	Origem  string `json:"origem" validate:"required"`
	Destino string `json:"destino" validate:"required"`
}

// TripMapView is the fully composed state of one trip map session.
type TripMapView struct {
	SessionID   uuid.UUID           `json:"session_id"`
	Origin      entity.GeoPoint     `json:"origin"`
	Destination entity.GeoPoint     `json:"destination"`
	Route       *entity.RouteResult `json:"route"`
	Distance    string              `json:"distance"`
	Duration    string              `json:"duration"`
	Map         *maprender.Snapshot `json:"map,omitempty"`
	ShareURL    string              `json:"share_url,omitempty"`
}

// TripMapUsecase composes geocoding, route planning, live tracking and the
// map surface into a per-trip map session.
type TripMapUsecase interface {
	// Prepare resolves both labels, plans the driving route and opens a new
	// map session. The two resolutions run concurrently; planning waits for
	// both.
	Prepare(ctx context.Context, input *TripMapInput) (*TripMapView, error)

	// Snapshot recomputes the session's map from the stored planned route
	// plus the tracking session's current trajectory and latest position.
	Snapshot(ctx context.Context, sessionID uuid.UUID) (*TripMapView, error)

	// ShareQR renders the session's share link as a PNG QR code.
	ShareQR(sessionID uuid.UUID) ([]byte, error)

	// Release disposes the session's map surface and forgets the session.
	Release(sessionID uuid.UUID) error
}
