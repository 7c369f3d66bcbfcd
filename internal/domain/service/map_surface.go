package service

import (
	"github.com/paulmach/orb"
)

// LineStyle describes how a polyline layer is drawn.
type LineStyle struct {
	Color  string `json:"color"`
	Weight int    `json:"weight"`
	Dashed bool   `json:"dashed"`
}

// MapSurface is the drawing target owned by the map renderer. The renderer
// is its exclusive owner: it acquires the surface lazily, mutates its layers
// on every redraw, and releases it deterministically on dispose. No other
// component reaches into a surface.
type MapSurface interface {
	// DrawPolyline draws (or replaces) the identified line layer.
	DrawPolyline(id string, line orb.LineString, style LineStyle)

	// RemoveLayer removes the identified layer. Removing an absent layer is
	// a no-op, so teardown-before-redraw stays idempotent.
	RemoveLayer(id string)

	// PlaceMarker positions the single current-position marker.
	PlaceMarker(at orb.Point)

	// RemoveMarker clears the current-position marker, if any.
	RemoveMarker()

	// FitBounds adjusts the viewport to contain b with the given padding.
	FitBounds(b orb.Bound, padding int)

	// Close releases the underlying map handle. Mutations after Close are
	// no-ops.
	Close()
}

// MapSurfaceFactory creates a map surface centered on a point at the given
// initial zoom level.
type MapSurfaceFactory func(center orb.Point, zoom int) MapSurface
