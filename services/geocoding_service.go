package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/theblakearruda/memory-app-backend/config"
)

// Coordinates is a geographic point returned by forward geocoding
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ResolvedPlace is the human-readable result of reverse geocoding. It is
// ephemeral: consumed by the caller and never persisted.
type ResolvedPlace struct {
	City    string `json:"city"`
	State   string `json:"state"`
	Display string `json:"display"` // "City, State", either side omitted if empty
}

// ErrNoPlaceName is returned when coordinates resolve but carry no usable
// settlement name. Callers treat it as a non-fatal status.
var ErrNoPlaceName = errors.New("resolved coordinates but no place name")

// InterfaceGeocodingService defines the geocoding service interface
type InterfaceGeocodingService interface {
	ForwardGeocode(ctx context.Context, name string) (*Coordinates, error)
	ReverseGeocode(ctx context.Context, lat, lon float64) (*ResolvedPlace, error)
}

// GeocodingService resolves place names to coordinates and coordinates to
// display names via external geocoding APIs
type GeocodingService struct {
	Config *config.Config
	Client *http.Client
}

// NewGeocodingService creates a new geocoding service
func NewGeocodingService(cfg *config.Config) InterfaceGeocodingService {
	return &GeocodingService{
		Config: cfg,
		Client: &http.Client{
			Timeout: time.Duration(cfg.WeatherTimeoutMillis()) * time.Millisecond,
		},
	}
}

// forwardGeocodeResponse matches the open-meteo geocoding search payload
type forwardGeocodeResponse struct {
	Results []struct {
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	} `json:"results"`
}

// reverseGeocodeResponse matches the nominatim jsonv2 payload
type reverseGeocodeResponse struct {
	Address struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		Hamlet  string `json:"hamlet"`
		State   string `json:"state"`
	} `json:"address"`
}

// ForwardGeocode resolves a free-text place name to coordinates. A place the
// service does not know returns (nil, nil) rather than an error.
func (s *GeocodingService) ForwardGeocode(ctx context.Context, name string) (*Coordinates, error) {
	params := url.Values{
		"name":     {strings.TrimSpace(name)},
		"count":    {"1"},
		"language": {"en"},
		"format":   {"json"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.Config.GeocodingAPIURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create geocode request: %w", err)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding API returned status code %d", resp.StatusCode)
	}

	var apiResp forwardGeocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("decode geocode response: %w", err)
	}

	if len(apiResp.Results) == 0 {
		return nil, nil
	}

	first := apiResp.Results[0]
	if first.Latitude == nil || first.Longitude == nil {
		return nil, nil
	}

	return &Coordinates{Latitude: *first.Latitude, Longitude: *first.Longitude}, nil
}

// ReverseGeocode resolves coordinates to a short "City, State" display
// string. Settlement name priority is city, then town, village, hamlet.
func (s *GeocodingService) ReverseGeocode(ctx context.Context, lat, lon float64) (*ResolvedPlace, error) {
	params := url.Values{
		"format": {"jsonv2"},
		"lat":    {fmt.Sprintf("%f", lat)},
		"lon":    {fmt.Sprintf("%f", lon)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.Config.ReverseGeocodingAPIURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create reverse geocode request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	// Nominatim usage policy requires an identifying agent
	req.Header.Set("User-Agent", "memory-app-backend/1.0")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reverse geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reverse geocoding API returned status code %d", resp.StatusCode)
	}

	var apiResp reverseGeocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("decode reverse geocode response: %w", err)
	}

	addr := apiResp.Address
	city := firstNonEmpty(addr.City, addr.Town, addr.Village, addr.Hamlet)

	parts := make([]string, 0, 2)
	if city != "" {
		parts = append(parts, city)
	}
	if addr.State != "" {
		parts = append(parts, addr.State)
	}

	display := strings.Join(parts, ", ")
	if display == "" {
		return nil, ErrNoPlaceName
	}

	return &ResolvedPlace{City: city, State: addr.State, Display: display}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
