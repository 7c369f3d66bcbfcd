// Package iplocate estimates a position from the network address through an
// external IP-geolocation service.
package iplocate

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/cacupatiago-web/frotaapp-sub000/config"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/domain/entity"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/domain/service"
)

const defaultTimeout = 10 * time.Second

// lookupResponse uses pointers so an absent coordinate field is
// distinguishable from zero.
type lookupResponse struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type client struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates the IP-geolocation client.
func NewClient(cfg *config.IPLocateConfig, logger *slog.Logger) service.IPLocator {
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

// Locate issues a single lookup. A transport failure or a response missing
// either coordinate field is treated as unavailable.
func (c *client) Locate(ctx context.Context) (entity.GeoPoint, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		c.logger.Warn("ip lookup request build failed", slog.Any("error", err))

		return entity.GeoPoint{}, service.ErrLocationUnavailable
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("ip lookup request failed", slog.Any("error", err))

		return entity.GeoPoint{}, service.ErrLocationUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("ip lookup non-success status", slog.Int("status", resp.StatusCode))

		return entity.GeoPoint{}, service.ErrLocationUnavailable
	}

	var decoded lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		c.logger.Warn("ip lookup decode failed", slog.Any("error", err))

		return entity.GeoPoint{}, service.ErrLocationUnavailable
	}

	if decoded.Latitude == nil || decoded.Longitude == nil {
		return entity.GeoPoint{}, service.ErrLocationUnavailable
	}

	return entity.GeoPoint{Lat: *decoded.Latitude, Lng: *decoded.Longitude}, nil
}
