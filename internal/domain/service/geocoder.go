package service

import (
	"context"

	"github.com/cacupatiago-web/frotaapp-sub000/internal/domain/entity"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/errors"
)

// ErrNoMatch is the explicit no-result signal of the coordinate resolver:
// every candidate query, including the country-only fallback, failed or
// returned no match. Transport errors never surface past the resolver.
var ErrNoMatch = errors.New("no coordinate match for label")

// Geocoder resolves a free-text hierarchical location label to coordinates.
type Geocoder interface {
	// Resolve tries progressively broader candidate queries, strictly in
	// sequence, and returns the first match. It returns ErrNoMatch when the
	// whole fallback chain is exhausted, and never a transport error.
	Resolve(ctx context.Context, label string) (entity.GeoPoint, error)
}
