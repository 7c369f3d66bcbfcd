package maprender

import (
	"testing"

	"github.com/cacupatiago-web/frotaapp-sub000/config"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/domain/entity"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSurface counts surface operations for assertions.
type recordingSurface struct {
	created   orb.Point
	zoom      int
	layers    map[string][]orb.Point
	marker    *orb.Point
	fitCalls  int
	lastFit   orb.Bound
	lastPad   int
	closed    bool
	drawOrder []string
}

func (s *recordingSurface) DrawPolyline(id string, line orb.LineString, _ service.LineStyle) {
	s.layers[id] = line
	s.drawOrder = append(s.drawOrder, id)
}

func (s *recordingSurface) RemoveLayer(id string) { delete(s.layers, id) }

func (s *recordingSurface) PlaceMarker(at orb.Point) { s.marker = &at }

func (s *recordingSurface) RemoveMarker() { s.marker = nil }

func (s *recordingSurface) FitBounds(b orb.Bound, padding int) {
	s.fitCalls++
	s.lastFit = b
	s.lastPad = padding
}

func (s *recordingSurface) Close() { s.closed = true }

type recordingFactory struct {
	surfaces []*recordingSurface
}

func (f *recordingFactory) factory(center orb.Point, zoom int) service.MapSurface {
	s := &recordingSurface{created: center, zoom: zoom, layers: make(map[string][]orb.Point)}
	f.surfaces = append(f.surfaces, s)

	return s
}

func points(coords ...float64) []entity.GeoPoint {
	var out []entity.GeoPoint
	for i := 0; i+1 < len(coords); i += 2 {
		out = append(out, entity.GeoPoint{Lat: coords[i], Lng: coords[i+1]})
	}

	return out
}

func TestRenderer_WaitsForDataBeforeCreatingSurface(t *testing.T) {
	factory := &recordingFactory{}
	renderer := New(factory.factory, nil)

	assert.False(t, renderer.Update(nil, nil, nil), "no center yet, placeholder state")
	assert.Empty(t, factory.surfaces)

	assert.True(t, renderer.Update(points(-8.9, 13.3), nil, nil))
	assert.Len(t, factory.surfaces, 1)
}

func TestRenderer_SurfaceCreatedExactlyOnce(t *testing.T) {
	factory := &recordingFactory{}
	renderer := New(factory.factory, nil)

	planned := points(-8.9, 13.3, -8.95, 13.25)
	renderer.Update(planned, nil, nil)
	renderer.Update(planned, points(-8.91, 13.29, -8.92, 13.28), nil)
	renderer.Update(planned, nil, nil)

	assert.Len(t, factory.surfaces, 1)
}

func TestRenderer_CenterPrefersLatestTravelledPoint(t *testing.T) {
	factory := &recordingFactory{}
	renderer := New(factory.factory, nil)

	renderer.Update(points(-8.9, 13.3), points(-8.91, 13.29, -8.92, 13.28), nil)

	require.Len(t, factory.surfaces, 1)
	assert.Equal(t, orb.Point{13.28, -8.92}, factory.surfaces[0].created)
}

func TestRenderer_StaticFallbackCenter(t *testing.T) {
	factory := &recordingFactory{}
	cfg := &config.MapConfig{InitialZoom: 12}
	cfg.DefaultCenter.Lat = -8.8383
	cfg.DefaultCenter.Lng = 13.2344
	renderer := New(factory.factory, cfg)

	assert.True(t, renderer.Update(nil, nil, nil))
	require.Len(t, factory.surfaces, 1)
	assert.Equal(t, orb.Point{13.2344, -8.8383}, factory.surfaces[0].created)
	assert.Equal(t, 12, factory.surfaces[0].zoom)
}

func TestRenderer_AutoFitHappensAtMostOnce(t *testing.T) {
	factory := &recordingFactory{}
	renderer := New(factory.factory, nil)

	planned := points(-8.9, 13.3, -8.95, 13.25)

	// Three successive updates, each with >=2 drawable points.
	renderer.Update(planned, nil, nil)
	renderer.Update(planned, points(-8.91, 13.29, -8.92, 13.28), nil)
	current := entity.GeoPoint{Lat: -8.93, Lng: 13.27}
	renderer.Update(planned, points(-8.91, 13.29, -8.92, 13.28), &current)

	require.Len(t, factory.surfaces, 1)
	assert.Equal(t, 1, factory.surfaces[0].fitCalls)
}

func TestRenderer_NoFitBelowTwoPoints(t *testing.T) {
	factory := &recordingFactory{}
	renderer := New(factory.factory, nil)

	renderer.Update(points(-8.9, 13.3), nil, nil)

	require.Len(t, factory.surfaces, 1)
	assert.Zero(t, factory.surfaces[0].fitCalls)

	// Second drawable point arrives later: fit happens now, once.
	current := entity.GeoPoint{Lat: -8.95, Lng: 13.25}
	renderer.Update(points(-8.9, 13.3), nil, &current)
	assert.Equal(t, 1, factory.surfaces[0].fitCalls)
}

func TestRenderer_SinglePointNeverDrawnAsLine(t *testing.T) {
	factory := &recordingFactory{}
	renderer := New(factory.factory, nil)

	renderer.Update(points(-8.9, 13.3), nil, nil)

	require.Len(t, factory.surfaces, 1)
	surface := factory.surfaces[0]
	assert.Empty(t, surface.layers, "one planned point and no travelled points draws neither line")
}

func TestRenderer_TravelledDrawnOverPlanned(t *testing.T) {
	factory := &recordingFactory{}
	renderer := New(factory.factory, nil)

	renderer.Update(points(-8.9, 13.3, -8.95, 13.25), points(-8.91, 13.29, -8.92, 13.28), nil)

	surface := factory.surfaces[0]
	require.Len(t, surface.drawOrder, 2)
	assert.Equal(t, []string{LayerPlanned, LayerTravelled}, surface.drawOrder)
}

func TestRenderer_MarkerFollowsCurrentPosition(t *testing.T) {
	factory := &recordingFactory{}
	renderer := New(factory.factory, nil)

	planned := points(-8.9, 13.3, -8.95, 13.25)
	current := entity.GeoPoint{Lat: -8.93, Lng: 13.27}
	renderer.Update(planned, nil, &current)

	surface := factory.surfaces[0]
	require.NotNil(t, surface.marker)
	assert.Equal(t, orb.Point{13.27, -8.93}, *surface.marker)

	// Current position cleared: marker removed on redraw.
	renderer.Update(planned, nil, nil)
	assert.Nil(t, surface.marker)
}

func TestRenderer_DisposeResetsFitForFreshSurface(t *testing.T) {
	factory := &recordingFactory{}
	renderer := New(factory.factory, nil)

	planned := points(-8.9, 13.3, -8.95, 13.25)
	renderer.Update(planned, nil, nil)
	require.Equal(t, 1, factory.surfaces[0].fitCalls)

	renderer.Dispose()
	assert.True(t, factory.surfaces[0].closed)
	renderer.Dispose() // idempotent

	renderer.Update(planned, nil, nil)
	require.Len(t, factory.surfaces, 2)
	assert.Equal(t, 1, factory.surfaces[1].fitCalls, "a fresh surface auto-fits again")
}

func TestViewSurface_SnapshotRoundTrip(t *testing.T) {
	cfg := &config.MapConfig{
		TileURL:         "https://tile.openstreetmap.org/{z}/{x}/{y}.png",
		TileAttribution: "© OpenStreetMap contributors",
	}
	factory := NewViewSurfaceFactory(cfg)
	renderer := New(factory, cfg)

	planned := points(-8.9, 13.3, -8.95, 13.25)
	current := entity.GeoPoint{Lat: -8.93, Lng: 13.27}
	require.True(t, renderer.Update(planned, nil, &current))

	renderer.mu.Lock()
	view := renderer.surface.(*ViewSurface)
	renderer.mu.Unlock()

	snap := view.Snapshot()
	assert.Equal(t, cfg.TileURL, snap.Tiles.URLTemplate)
	assert.Equal(t, cfg.TileAttribution, snap.Tiles.Attribution)
	require.Len(t, snap.Layers, 1)
	assert.Equal(t, LayerPlanned, snap.Layers[0].ID)
	assert.True(t, snap.Layers[0].Style.Dashed)
	require.NotNil(t, snap.Marker)
	assert.Equal(t, current, *snap.Marker)
	require.NotNil(t, snap.Fit)
	assert.Equal(t, entity.GeoPoint{Lat: -8.95, Lng: 13.25}, snap.Fit.SouthWest)

	view.Close()
	view.DrawPolyline("late", nil, service.LineStyle{})
	assert.Empty(t, view.Snapshot().Layers, "mutations after close are dropped")
}
