package service

import (
	"context"

	"github.com/cacupatiago-web/frotaapp-sub000/internal/domain/entity"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/errors"
)

// ErrLocationUnavailable is returned when the IP-geolocation lookup fails or
// the response is missing either coordinate field.
var ErrLocationUnavailable = errors.New("ip geolocation unavailable")

// IPLocator estimates a coarse position from the caller's network address.
// It is the one-shot fallback when the on-device sensor fails.
type IPLocator interface {
	Locate(ctx context.Context) (entity.GeoPoint, error)
}
