// Package entity contains the core business objects of the project.
package entity

import (
	"math"
	"strings"
	"time"

	"github.com/paulmach/orb"
)

// LabelSeparator joins the hierarchy segments of a location label,
// e.g. "Luanda · Viana · Zango 3".
const LabelSeparator = " · "

// GeoPoint is an immutable latitude/longitude pair.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the point lies within Earth bounds and is a real number.
func (p GeoPoint) Valid() bool {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lng) ||
		math.IsInf(p.Lat, 0) || math.IsInf(p.Lng, 0) {
		return false
	}

	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// Orb converts the point to orb's lng-first representation.
func (p GeoPoint) Orb() orb.Point {
	return orb.Point{p.Lng, p.Lat}
}

// FromOrb converts an orb lng-first point into a GeoPoint.
func FromOrb(p orb.Point) GeoPoint {
	return GeoPoint{Lat: p[1], Lng: p[0]}
}

// BuildLabel joins the non-empty, trimmed hierarchy segments into a
// location label, preserving hierarchy order.
func BuildLabel(segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, segment := range segments {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		parts = append(parts, segment)
	}

	return strings.Join(parts, LabelSeparator)
}

// SplitLabel decomposes a location label back into its hierarchy segments.
// Empty segments are dropped; an empty or whitespace-only label yields nil.
func SplitLabel(label string) []string {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil
	}

	var segments []string
	for _, segment := range strings.Split(label, LabelSeparator) {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		segments = append(segments, segment)
	}

	return segments
}

// RouteResult is the driving path between two resolved endpoints.
// Points run from origin to destination along the road network.
// It is immutable and recomputed on every label change, never cached.
type RouteResult struct {
	Points      []GeoPoint `json:"points"`
	DistanceKm  float64    `json:"distance_km"`
	DurationMin float64    `json:"duration_min"`
}

// SampleSource identifies how a live sample was obtained.
type SampleSource string

const (
	// SourceGPS marks a sample produced by the on-device sensor.
	SourceGPS SampleSource = "gps"
	// SourceIP marks a sample produced by the IP-geolocation fallback.
	SourceIP SampleSource = "ip"
)

// LiveSample is a single position report inside a tracking activation.
type LiveSample struct {
	Lat        float64      `json:"lat"`
	Lng        float64      `json:"lng"`
	Accuracy   float64      `json:"accuracy,omitempty"`
	Source     SampleSource `json:"source"`
	RecordedAt time.Time    `json:"recorded_at"`
}

// Point returns the sample's coordinates as a GeoPoint.
func (s LiveSample) Point() GeoPoint {
	return GeoPoint{Lat: s.Lat, Lng: s.Lng}
}
