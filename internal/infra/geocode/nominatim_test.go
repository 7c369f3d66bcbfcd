package geocode

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cacupatiago-web/frotaapp-sub000/config"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/domain/entity"
	"github.com/cacupatiago-web/frotaapp-sub000/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func silentLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (service.Geocoder, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.GeocodeConfig{
		Endpoint:    server.URL,
		CountryBias: "Angola",
	}

	return NewClient(cfg, silentLogger()), server
}

func TestResolve_FullLabelMatchStopsChain(t *testing.T) {
	var queries []string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		queries = append(queries, r.URL.Query().Get("q"))
		w.Write([]byte(`[{"lat":"-8.9100","lon":"13.3600"}]`))
	})

	point, err := client.Resolve(context.Background(), "Luanda · Viana · Zango 3")
	require.NoError(t, err)

	assert.Equal(t, entity.GeoPoint{Lat: -8.91, Lng: 13.36}, point)
	require.Len(t, queries, 1, "first success must stop the fallback chain")
	assert.Equal(t, "Luanda, Viana, Zango 3, Angola", queries[0])
}

func TestResolve_FallbackNarrowsQueryThenCountry(t *testing.T) {
	var queries []string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		queries = append(queries, r.URL.Query().Get("q"))
		if len(queries) < 4 {
			w.Write([]byte(`[]`))

			return
		}
		w.Write([]byte(`[{"lat":"-11.2027","lon":"17.8739"}]`))
	})

	point, err := client.Resolve(context.Background(), "Luanda · Viana · Zango 3")
	require.NoError(t, err)

	expected := []string{
		"Luanda, Viana, Zango 3, Angola",
		"Luanda, Viana, Angola",
		"Luanda, Angola",
		"Angola",
	}
	assert.Equal(t, expected, queries)
	assert.InDelta(t, -11.2027, point.Lat, 1e-9)
}

func TestResolve_AtMostNPlusOneCandidates(t *testing.T) {
	var count int
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		count++
		w.Write([]byte(`[]`))
	})

	_, err := client.Resolve(context.Background(), "Benguela · Lobito")
	assert.ErrorIs(t, err, service.ErrNoMatch)
	// 2 hierarchy segments: 2 truncated queries + 1 country-only fallback.
	assert.Equal(t, 3, count)
}

func TestResolve_EmptyLabelNoNetworkCall(t *testing.T) {
	var count int
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		count++
		w.Write([]byte(`[]`))
	})

	for _, label := range []string{"", "   ", "\t"} {
		_, err := client.Resolve(context.Background(), label)
		assert.ErrorIs(t, err, service.ErrNoMatch)
	}
	assert.Zero(t, count)
}

func TestResolve_TransportErrorsContinueChain(t *testing.T) {
	var count int
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		count++
		switch count {
		case 1:
			w.WriteHeader(http.StatusInternalServerError)
		case 2:
			w.Write([]byte(`{not json`))
		default:
			w.Write([]byte(`[{"lat":"-8.8383","lon":"13.2344"}]`))
		}
	})

	point, err := client.Resolve(context.Background(), "Luanda · Belas")
	require.NoError(t, err)
	assert.Equal(t, 3, count, "each failed candidate is tried once, never retried")
	assert.InDelta(t, 13.2344, point.Lng, 1e-9)
}

func TestResolve_TakesFirstRankedResult(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"lat":"-8.8383","lon":"13.2344"},{"lat":"0","lon":"0"}]`))
	})

	point, err := client.Resolve(context.Background(), "Luanda")
	require.NoError(t, err)
	assert.Equal(t, entity.GeoPoint{Lat: -8.8383, Lng: 13.2344}, point)
}

func TestResolve_ExhaustedChainReturnsNoMatch(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.Resolve(context.Background(), "Huambo")
	assert.ErrorIs(t, err, service.ErrNoMatch)
}
