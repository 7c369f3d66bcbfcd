// Package geocode resolves location labels to coordinates through a
// Nominatim-compatible search endpoint.
package geocode

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cacupatiago-web/frotaapp-sub000/config"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/domain/entity"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/domain/service"
)

const (
	defaultTimeout     = 10 * time.Second
	defaultCountryBias = "Angola"
)

// searchResult is the subset of the Nominatim response the resolver uses.
// Coordinates arrive as strings.
type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

type client struct {
	endpoint    string
	countryBias string
	httpClient  *http.Client
	logger      *slog.Logger
}

// NewClient creates the coordinate resolver. The HTTP transport and logger
// are owned by the client; callers only see the Geocoder contract.
func NewClient(cfg *config.GeocodeConfig, logger *slog.Logger) service.Geocoder {
	timeout := defaultTimeout
	countryBias := defaultCountryBias
	endpoint := ""
	if cfg != nil {
		endpoint = cfg.Endpoint
		if cfg.Timeout > 0 {
			timeout = cfg.Timeout
		}
		if cfg.CountryBias != "" {
			countryBias = cfg.CountryBias
		}
	}

	return &client{
		endpoint:    endpoint,
		countryBias: countryBias,
		httpClient:  &http.Client{Timeout: timeout},
		logger:      logger,
	}
}

// Resolve walks the ordered fallback query list, first success wins:
// the full label, then the label with the rightmost segment dropped, down to
// the top-level segment, and finally the bare country name. Candidates are
// strictly sequential; a later candidate is never issued until the earlier
// one has resolved.
func (c *client) Resolve(ctx context.Context, label string) (entity.GeoPoint, error) {
	segments := entity.SplitLabel(label)
	if len(segments) == 0 {
		// Empty or whitespace-only label: no network call at all.
		return entity.GeoPoint{}, service.ErrNoMatch
	}

	for _, query := range c.candidateQueries(segments) {
		point, ok := c.lookup(ctx, query)
		if ok {
			return point, nil
		}
	}

	return entity.GeoPoint{}, service.ErrNoMatch
}

// candidateQueries builds the N progressively-truncated queries plus the
// country-only fallback. Every truncated query carries the country
// qualifier to bias results.
func (c *client) candidateQueries(segments []string) []string {
	queries := make([]string, 0, len(segments)+1)
	for end := len(segments); end >= 1; end-- {
		queries = append(queries, strings.Join(segments[:end], ", ")+", "+c.countryBias)
	}
	queries = append(queries, c.countryBias)

	return queries
}

// lookup issues one candidate query. Any transport failure, non-success
// status, parse error or empty result set means "no result for this
// candidate": it is logged and the chain moves on. The same query is never
// retried.
func (c *client) lookup(ctx context.Context, query string) (entity.GeoPoint, bool) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		c.logger.Warn("geocode request build failed", slog.String("query", query), slog.Any("error", err))

		return entity.GeoPoint{}, false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("geocode request failed", slog.String("query", query), slog.Any("error", err))

		return entity.GeoPoint{}, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("geocode non-success status",
			slog.String("query", query), slog.Int("status", resp.StatusCode))

		return entity.GeoPoint{}, false
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		c.logger.Warn("geocode response decode failed", slog.String("query", query), slog.Any("error", err))

		return entity.GeoPoint{}, false
	}

	if len(results) == 0 {
		return entity.GeoPoint{}, false
	}

	// First element is assumed best-ranked.
	point, err := parseResult(results[0])
	if err != nil {
		c.logger.Warn("geocode result parse failed", slog.String("query", query), slog.Any("error", err))

		return entity.GeoPoint{}, false
	}

	return point, true
}

func parseResult(r searchResult) (entity.GeoPoint, error) {
	lat, err := strconv.ParseFloat(r.Lat, 64)
	if err != nil {
		return entity.GeoPoint{}, err
	}

	lng, err := strconv.ParseFloat(r.Lon, 64)
	if err != nil {
		return entity.GeoPoint{}, err
	}

	return entity.GeoPoint{Lat: lat, Lng: lng}, nil
}
