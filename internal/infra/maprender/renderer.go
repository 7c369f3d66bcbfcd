// Package maprender owns the map surface of a trip: a dashed planned-route
// layer, a solid travelled-trajectory layer and a current-position marker.
package maprender

import (
	"sync"

	"github.com/cacupatiago-web/frotaapp-sub000/config"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/domain/entity"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/domain/service"

	"github.com/paulmach/orb"
)

const (
	// LayerPlanned identifies the dashed planned-route line.
	LayerPlanned = "planned-route"
	// LayerTravelled identifies the solid travelled-trajectory line.
	LayerTravelled = "travelled-route"

	defaultZoom    = 13
	defaultPadding = 40
)

var (
	plannedStyle   = service.LineStyle{Color: "#2563eb", Weight: 4, Dashed: true}
	travelledStyle = service.LineStyle{Color: "#16a34a", Weight: 4, Dashed: false}
)

// Renderer is the exclusive owner of one map surface. The surface is
// acquired lazily on the first update that has a usable center, every redraw
// tears down and redraws the line layers, and the viewport is auto-fit at
// most once per surface lifetime.
type Renderer struct {
	factory       service.MapSurfaceFactory
	zoom          int
	padding       int
	defaultCenter *orb.Point

	mu      sync.Mutex
	surface service.MapSurface
	fitted  bool
}

// New creates a renderer. The surface itself is not created until the first
// Update with a computable center.
func New(factory service.MapSurfaceFactory, cfg *config.MapConfig) *Renderer {
	r := &Renderer{
		factory: factory,
		zoom:    defaultZoom,
		padding: defaultPadding,
	}

	if cfg != nil {
		if cfg.InitialZoom > 0 {
			r.zoom = cfg.InitialZoom
		}
		if cfg.FitPadding > 0 {
			r.padding = cfg.FitPadding
		}
		if cfg.DefaultCenter.Lat != 0 || cfg.DefaultCenter.Lng != 0 {
			center := orb.Point{cfg.DefaultCenter.Lng, cfg.DefaultCenter.Lat}
			r.defaultCenter = &center
		}
	}

	return r
}

// Update redraws the surface from the current inputs. Each call fully
// recomputes the drawn state instead of patching the previous redraw, so
// updates may arrive in any order.
//
// It reports whether a surface exists after the call; false means there is
// no data to center a map on yet and the caller should show a waiting
// placeholder.
func (r *Renderer) Update(planned, travelled []entity.GeoPoint, current *entity.GeoPoint) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.surface == nil {
		center, ok := r.centerFor(planned, travelled)
		if !ok {
			return false
		}
		// Created exactly once; later updates reuse the handle.
		r.surface = r.factory(center, r.zoom)
	}

	surface := r.surface

	// Idempotent teardown before redraw, never accumulate stale layers.
	surface.RemoveLayer(LayerPlanned)
	surface.RemoveLayer(LayerTravelled)

	if len(planned) >= 2 {
		surface.DrawPolyline(LayerPlanned, toLine(planned), plannedStyle)
	}

	// Drawn after the planned line so the actual path stays visually
	// dominant.
	if len(travelled) >= 2 {
		surface.DrawPolyline(LayerTravelled, toLine(travelled), travelledStyle)
	}

	surface.RemoveMarker()
	if current != nil {
		surface.PlaceMarker(current.Orb())
	}

	if !r.fitted {
		if bound, ok := boundOver(planned, travelled, current); ok {
			surface.FitBounds(bound, r.padding)
			r.fitted = true
		}
	}

	return true
}

// Surface returns the current surface handle, or nil before the first
// update with a usable center.
func (r *Renderer) Surface() service.MapSurface {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.surface
}

// Dispose releases the surface and resets the auto-fit flag so a freshly
// created surface can fit again. Idempotent.
func (r *Renderer) Dispose() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.surface != nil {
		r.surface.Close()
		r.surface = nil
	}
	r.fitted = false
}

// centerFor picks the initial center: latest travelled point, else first
// planned point, else the configured static center.
func (r *Renderer) centerFor(planned, travelled []entity.GeoPoint) (orb.Point, bool) {
	if len(travelled) > 0 {
		return travelled[len(travelled)-1].Orb(), true
	}
	if len(planned) > 0 {
		return planned[0].Orb(), true
	}
	if r.defaultCenter != nil {
		return *r.defaultCenter, true
	}

	return orb.Point{}, false
}

// boundOver computes the bound over every drawable point. The auto-fit only
// happens once at least two points exist.
func boundOver(planned, travelled []entity.GeoPoint, current *entity.GeoPoint) (orb.Bound, bool) {
	points := make(orb.MultiPoint, 0, len(planned)+len(travelled)+1)
	for _, p := range planned {
		points = append(points, p.Orb())
	}
	for _, p := range travelled {
		points = append(points, p.Orb())
	}
	if current != nil {
		points = append(points, current.Orb())
	}

	if len(points) < 2 {
		return orb.Bound{}, false
	}

	return points.Bound(), true
}

func toLine(points []entity.GeoPoint) orb.LineString {
	line := make(orb.LineString, 0, len(points))
	for _, p := range points {
		line = append(line, p.Orb())
	}

	return line
}
