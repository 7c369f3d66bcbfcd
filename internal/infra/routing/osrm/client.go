// Package osrm fetches driving paths from an OSRM-compatible route service.
package osrm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cacupatiago-web/frotaapp-sub000/config"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/domain/entity"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/domain/service"
)

const defaultTimeout = 15 * time.Second

// routeResponse is the subset of the OSRM response the planner uses.
// Geometry coordinates arrive longitude-first.
type routeResponse struct {
	Routes []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
		Distance float64 `json:"distance"` // meters
		Duration float64 `json:"duration"` // seconds
	} `json:"routes"`
}

type client struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates the route planner client.
func NewClient(cfg *config.RoutingConfig, logger *slog.Logger) service.RoutePlanner {
	timeout := defaultTimeout
	endpoint := ""
	if cfg != nil {
		endpoint = cfg.Endpoint
		if cfg.Timeout > 0 {
			timeout = cfg.Timeout
		}
	}

	return &client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Plan issues a single full-geometry request for the two points. Transport
// failures, non-success statuses and empty route sets are logged and
// collapse to ErrNoRoute; nothing is retried or cached.
func (c *client) Plan(ctx context.Context, origin, destination entity.GeoPoint) (*entity.RouteResult, error) {
	requestURL := fmt.Sprintf("%s/%f,%f;%f,%f?overview=full&geometries=geojson",
		c.endpoint, origin.Lng, origin.Lat, destination.Lng, destination.Lat)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		c.logger.Warn("route request build failed", slog.Any("error", err))

		return nil, service.ErrNoRoute
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("route request failed", slog.Any("error", err))

		return nil, service.ErrNoRoute
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("route non-success status", slog.Int("status", resp.StatusCode))

		return nil, service.ErrNoRoute
	}

	var decoded routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		c.logger.Warn("route response decode failed", slog.Any("error", err))

		return nil, service.ErrNoRoute
	}

	if len(decoded.Routes) == 0 {
		return nil, service.ErrNoRoute
	}

	// First route only; reverse the service's lng-first convention and
	// convert meters to kilometers, seconds to minutes.
	route := decoded.Routes[0]
	points := make([]entity.GeoPoint, 0, len(route.Geometry.Coordinates))
	for _, coord := range route.Geometry.Coordinates {
		if len(coord) < 2 {
			continue
		}
		points = append(points, entity.GeoPoint{Lat: coord[1], Lng: coord[0]})
	}

	return &entity.RouteResult{
		Points:      points,
		DistanceKm:  route.Distance / 1000,
		DurationMin: route.Duration / 60,
	}, nil
}
