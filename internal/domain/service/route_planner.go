package service

import (
	"context"

	"github.com/cacupatiago-web/frotaapp-sub000/internal/domain/entity"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/errors"
)

// ErrNoRoute is the explicit no-result signal of the route planner: the
// routing service returned zero routes or the request failed entirely.
var ErrNoRoute = errors.New("no route between endpoints")

// RoutePlanner fetches a driving path between two resolved points.
type RoutePlanner interface {
	// Plan issues a single request for full path geometry. No retries, no
	// caching. Returns ErrNoRoute for transport failures, non-success
	// statuses and empty route sets alike.
	Plan(ctx context.Context, origin, destination entity.GeoPoint) (*entity.RouteResult, error)
}
