package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/theblakearruda/memory-app-backend/config"
)

// WeatherResult is the enrichment triple attached to an envelope. Either all
// three fields are set or all three are nil; a failed lookup never produces a
// partial result.
type WeatherResult struct {
	Weather     *string `json:"weather"`
	WeatherCode *int    `json:"weather_code"`
	TempF       *int    `json:"temp_f"`
}

// Resolved reports whether the lookup produced usable weather data
func (w WeatherResult) Resolved() bool {
	return w.Weather != nil && w.WeatherCode != nil && w.TempF != nil
}

// InterfaceWeatherService defines the weather service interface
type InterfaceWeatherService interface {
	GetWeatherForLocation(ctx context.Context, location string) WeatherResult
}

// WeatherService derives a best-effort weather snapshot for a free-text
// location by chaining a forward geocode and a current-weather lookup. Both
// hops are bounded by the configured timeout and any failure degrades to the
// all-nil triple instead of surfacing an error.
type WeatherService struct {
	Config    *config.Config
	Geocoding InterfaceGeocodingService
	Client    *http.Client
}

// NewWeatherService creates a new weather service
func NewWeatherService(cfg *config.Config, geocoding InterfaceGeocodingService) InterfaceWeatherService {
	return &WeatherService{
		Config:    cfg,
		Geocoding: geocoding,
		Client: &http.Client{
			Timeout: time.Duration(cfg.WeatherTimeoutMillis()) * time.Millisecond,
		},
	}
}

// forecastResponse matches the open-meteo current weather payload
type forecastResponse struct {
	CurrentWeather *struct {
		WeatherCode *int     `json:"weathercode"`
		Temperature *float64 `json:"temperature"`
	} `json:"current_weather"`
}

// GetWeatherForLocation returns the weather triple for a location string. An
// empty location skips the lookup entirely; this and every upstream failure
// are normal outcomes, not errors.
func (s *WeatherService) GetWeatherForLocation(ctx context.Context, location string) WeatherResult {
	location = strings.TrimSpace(location)
	if location == "" {
		return WeatherResult{}
	}

	timeout := time.Duration(s.Config.WeatherTimeoutMillis()) * time.Millisecond

	geocodeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	coords, err := s.Geocoding.ForwardGeocode(geocodeCtx, location)
	if err != nil || coords == nil {
		return WeatherResult{}
	}

	forecastCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	params := url.Values{
		"latitude":        {fmt.Sprintf("%f", coords.Latitude)},
		"longitude":       {fmt.Sprintf("%f", coords.Longitude)},
		"current_weather": {"true"},
	}

	req, err := http.NewRequestWithContext(forecastCtx, http.MethodGet, s.Config.ForecastAPIURL+"?"+params.Encode(), nil)
	if err != nil {
		return WeatherResult{}
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return WeatherResult{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return WeatherResult{}
	}

	var apiResp forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return WeatherResult{}
	}

	cw := apiResp.CurrentWeather
	if cw == nil || cw.WeatherCode == nil || cw.Temperature == nil {
		return WeatherResult{}
	}

	weather := WeatherCodeToText(*cw.WeatherCode)
	code := *cw.WeatherCode
	tempF := CelsiusToFahrenheit(*cw.Temperature)

	return WeatherResult{
		Weather:     &weather,
		WeatherCode: &code,
		TempF:       &tempF,
	}
}

// WeatherCodeToText translates a WMO weather code into a short descriptor
func WeatherCodeToText(code int) string {
	switch code {
	case 0:
		return "clear"
	case 1, 2:
		return "mostly clear"
	case 3:
		return "cloudy"
	case 45, 48:
		return "fog"
	case 51, 53, 55, 56, 57:
		return "drizzle"
	case 61, 63, 65, 66, 67:
		return "rain"
	case 71, 73, 75, 77:
		return "snow"
	case 80, 81, 82:
		return "rain showers"
	case 85, 86:
		return "snow showers"
	case 95, 96, 99:
		return "thunderstorm"
	default:
		return "unknown"
	}
}

// CelsiusToFahrenheit converts a Celsius reading to rounded Fahrenheit
func CelsiusToFahrenheit(c float64) int {
	return int(math.Round(c*9/5 + 32))
}
