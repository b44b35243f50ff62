package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theblakearruda/memory-app-backend/config"
)

func geocodingTestConfig(forwardURL, reverseURL string) *config.Config {
	return &config.Config{
		GeocodingAPIURL:        forwardURL,
		ReverseGeocodingAPIURL: reverseURL,
		WeatherTimeoutMS:       8000,
	}
}

func TestForwardGeocode_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Portland", r.URL.Query().Get("name"))
		assert.Equal(t, "1", r.URL.Query().Get("count"))
		assert.Equal(t, "en", r.URL.Query().Get("language"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[{"latitude":45.5152,"longitude":-122.6784}]}`))
	}))
	defer srv.Close()

	svc := NewGeocodingService(geocodingTestConfig(srv.URL, ""))

	coords, err := svc.ForwardGeocode(context.Background(), "Portland")
	require.NoError(t, err)
	require.NotNil(t, coords)
	assert.Equal(t, 45.5152, coords.Latitude)
	assert.Equal(t, -122.6784, coords.Longitude)
}

func TestForwardGeocode_NoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"generationtime_ms":0.5}`))
	}))
	defer srv.Close()

	svc := NewGeocodingService(geocodingTestConfig(srv.URL, ""))

	coords, err := svc.ForwardGeocode(context.Background(), "xyzzy")
	require.NoError(t, err)
	assert.Nil(t, coords)
}

func TestForwardGeocode_MissingCoordinateFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"results":[{"name":"Portland"}]}`))
	}))
	defer srv.Close()

	svc := NewGeocodingService(geocodingTestConfig(srv.URL, ""))

	coords, err := svc.ForwardGeocode(context.Background(), "Portland")
	require.NoError(t, err)
	assert.Nil(t, coords)
}

func TestForwardGeocode_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	svc := NewGeocodingService(geocodingTestConfig(srv.URL, ""))

	_, err := svc.ForwardGeocode(context.Background(), "Portland")
	assert.Error(t, err)
}

func TestReverseGeocode_CityAndState(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "jsonv2", r.URL.Query().Get("format"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))

		w.Write([]byte(`{"address":{"city":"Portland","state":"Oregon"}}`))
	}))
	defer srv.Close()

	svc := NewGeocodingService(geocodingTestConfig("", srv.URL))

	place, err := svc.ReverseGeocode(context.Background(), 45.5152, -122.6784)
	require.NoError(t, err)
	assert.Equal(t, "Portland, Oregon", place.Display)
}

func TestReverseGeocode_SettlementPriority(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		want    string
	}{
		{"city wins over town", `{"address":{"city":"Bigcity","town":"Smalltown","state":"Oregon"}}`, "Bigcity, Oregon"},
		{"town wins over village", `{"address":{"town":"Smalltown","village":"Tinyville","state":"Oregon"}}`, "Smalltown, Oregon"},
		{"village wins over hamlet", `{"address":{"village":"Tinyville","hamlet":"Dot","state":"Oregon"}}`, "Tinyville, Oregon"},
		{"hamlet as last resort", `{"address":{"hamlet":"Dot","state":"Oregon"}}`, "Dot, Oregon"},
		{"city without state", `{"address":{"city":"Portland"}}`, "Portland"},
		{"state without settlement", `{"address":{"state":"Oregon"}}`, "Oregon"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Write([]byte(tc.payload))
			}))
			defer srv.Close()

			svc := NewGeocodingService(geocodingTestConfig("", srv.URL))

			place, err := svc.ReverseGeocode(context.Background(), 1, 2)
			require.NoError(t, err)
			assert.Equal(t, tc.want, place.Display)
		})
	}
}

func TestReverseGeocode_NoPlaceName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"address":{"country":"Atlantis"}}`))
	}))
	defer srv.Close()

	svc := NewGeocodingService(geocodingTestConfig("", srv.URL))

	_, err := svc.ReverseGeocode(context.Background(), 1, 2)
	assert.ErrorIs(t, err, ErrNoPlaceName)
}

func TestReverseGeocode_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	svc := NewGeocodingService(geocodingTestConfig("", srv.URL))

	_, err := svc.ReverseGeocode(context.Background(), 1, 2)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoPlaceName)
}
