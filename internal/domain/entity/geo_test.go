package entity

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestGeoPoint_Valid(t *testing.T) {
	tests := []struct {
		name  string
		point GeoPoint
		want  bool
	}{
		{"luanda", GeoPoint{Lat: -8.83, Lng: 13.23}, true},
		{"extreme corners", GeoPoint{Lat: -90, Lng: 180}, true},
		{"latitude out of range", GeoPoint{Lat: 91, Lng: 0}, false},
		{"longitude out of range", GeoPoint{Lat: 0, Lng: -181}, false},
		{"nan latitude", GeoPoint{Lat: math.NaN(), Lng: 13}, false},
		{"infinite longitude", GeoPoint{Lat: 0, Lng: math.Inf(1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.point.Valid())
		})
	}
}

func TestGeoPoint_OrbRoundTrip(t *testing.T) {
	p := GeoPoint{Lat: -8.91, Lng: 13.36}

	assert.Equal(t, orb.Point{13.36, -8.91}, p.Orb())
	assert.Equal(t, p, FromOrb(p.Orb()))
}

func TestBuildLabel(t *testing.T) {
	tests := []struct {
		name     string
		segments []string
		want     string
	}{
		{"full hierarchy", []string{"Luanda", "Viana", "Zango 3"}, "Luanda · Viana · Zango 3"},
		{"skips empty segments", []string{"Luanda", "", "Zango 3"}, "Luanda · Zango 3"},
		{"trims whitespace", []string{" Luanda ", "Viana"}, "Luanda · Viana"},
		{"single segment", []string{"Luanda"}, "Luanda"},
		{"no segments", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildLabel(tt.segments...))
		})
	}
}

func TestSplitLabel(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  []string
	}{
		{"full hierarchy", "Luanda · Viana · Zango 3", []string{"Luanda", "Viana", "Zango 3"}},
		{"single segment", "Luanda", []string{"Luanda"}},
		{"empty label", "", nil},
		{"whitespace only", "   ", nil},
		{"drops empty segments", "Luanda ·  · Viana", []string{"Luanda", "Viana"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLabel(tt.label))
		})
	}
}

func TestSplitLabel_InvertsBuildLabel(t *testing.T) {
	segments := []string{"Luanda", "Belas", "Benfica"}

	assert.Equal(t, segments, SplitLabel(BuildLabel(segments...)))
}

func TestLiveSample_Point(t *testing.T) {
	s := LiveSample{Lat: -8.9, Lng: 13.2, Source: SourceGPS}

	assert.Equal(t, GeoPoint{Lat: -8.9, Lng: 13.2}, s.Point())
}
