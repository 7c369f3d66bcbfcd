package maprender

import (
	"sync"

	"github.com/cacupatiago-web/frotaapp-sub000/config"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/domain/entity"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/domain/service"

	"github.com/paulmach/orb"
)

// TileLayer describes the raster tile source clients must render, with the
// attribution the provider requires.
type TileLayer struct {
	URLTemplate string `json:"url_template"`
	Attribution string `json:"attribution"`
}

// PolylineView is a drawn line layer in a snapshot.
type PolylineView struct {
	ID     string            `json:"id"`
	Points []entity.GeoPoint `json:"points"`
	Style  service.LineStyle `json:"style"`
}

// BoundsView is the auto-fit viewport applied to a snapshot, if any.
type BoundsView struct {
	SouthWest entity.GeoPoint `json:"south_west"`
	NorthEast entity.GeoPoint `json:"north_east"`
	Padding   int             `json:"padding"`
}

// Snapshot is the serializable view model of a map surface: everything a
// client needs to render the map without further queries.
type Snapshot struct {
	Center entity.GeoPoint  `json:"center"`
	Zoom   int              `json:"zoom"`
	Tiles  TileLayer        `json:"tiles"`
	Layers []PolylineView   `json:"layers"`
	Marker *entity.GeoPoint `json:"marker,omitempty"`
	Fit    *BoundsView      `json:"fit,omitempty"`
}

// ViewSurface is the concrete map surface: instead of driving a widget it
// materializes the authoritative view model served to dashboard clients.
type ViewSurface struct {
	mu     sync.Mutex
	closed bool

	center entity.GeoPoint
	zoom   int
	tiles  TileLayer

	order  []string
	layers map[string]PolylineView
	marker *entity.GeoPoint
	fit    *BoundsView
}

// NewViewSurfaceFactory builds the surface factory from map configuration.
func NewViewSurfaceFactory(cfg *config.MapConfig) service.MapSurfaceFactory {
	var tiles TileLayer
	if cfg != nil {
		tiles = TileLayer{
			URLTemplate: cfg.TileURL,
			Attribution: cfg.TileAttribution,
		}
	}

	return func(center orb.Point, zoom int) service.MapSurface {
		return &ViewSurface{
			center: entity.FromOrb(center),
			zoom:   zoom,
			tiles:  tiles,
			layers: make(map[string]PolylineView),
		}
	}
}

// DrawPolyline draws or replaces the identified line layer.
func (v *ViewSurface) DrawPolyline(id string, line orb.LineString, style service.LineStyle) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return
	}

	if _, exists := v.layers[id]; !exists {
		v.order = append(v.order, id)
	}

	points := make([]entity.GeoPoint, 0, len(line))
	for _, p := range line {
		points = append(points, entity.FromOrb(p))
	}

	v.layers[id] = PolylineView{ID: id, Points: points, Style: style}
}

// RemoveLayer removes the identified layer; absent layers are a no-op.
func (v *ViewSurface) RemoveLayer(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return
	}

	if _, exists := v.layers[id]; !exists {
		return
	}

	delete(v.layers, id)
	for i, existing := range v.order {
		if existing == id {
			v.order = append(v.order[:i], v.order[i+1:]...)

			break
		}
	}
}

// PlaceMarker positions the current-position marker.
func (v *ViewSurface) PlaceMarker(at orb.Point) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return
	}

	marker := entity.FromOrb(at)
	v.marker = &marker
}

// RemoveMarker clears the current-position marker.
func (v *ViewSurface) RemoveMarker() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return
	}

	v.marker = nil
}

// FitBounds records the auto-fit viewport for clients to apply.
func (v *ViewSurface) FitBounds(b orb.Bound, padding int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return
	}

	v.fit = &BoundsView{
		SouthWest: entity.FromOrb(b.Min),
		NorthEast: entity.FromOrb(b.Max),
		Padding:   padding,
	}
}

// Close releases the surface; later mutations are dropped.
func (v *ViewSurface) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.closed = true
	v.layers = nil
	v.order = nil
	v.marker = nil
	v.fit = nil
}

// Snapshot returns a copy of the current view model in draw order.
func (v *ViewSurface) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	snap := Snapshot{
		Center: v.center,
		Zoom:   v.zoom,
		Tiles:  v.tiles,
	}

	for _, id := range v.order {
		snap.Layers = append(snap.Layers, v.layers[id])
	}
	if v.marker != nil {
		marker := *v.marker
		snap.Marker = &marker
	}
	if v.fit != nil {
		fit := *v.fit
		snap.Fit = &fit
	}

	return snap
}

var _ service.MapSurface = (*ViewSurface)(nil)
