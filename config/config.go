package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

var (
	config     *Config
	configOnce sync.Once
)

// Config stores all configuration of the application
type Config struct {
	// Environment type
	EnvType string

	// Database
	DBHost          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBPort          string
	DBMigrationMode string // "auto" (default), "drop" (drop and recreate)

	// Server
	ServerPort string

	// Redis
	RedisHost string
	RedisPort string
	RedisDB   int

	// External geocoding / forecast services
	GeocodingAPIURL        string // forward geocode: place name -> coordinates
	ReverseGeocodingAPIURL string // reverse geocode: coordinates -> place
	ForecastAPIURL         string // current weather by coordinates
	WeatherTimeoutMS       int    // per-call timeout for each outbound hop

	// Envelope storage
	EnvelopeTable       string
	EnvelopeOrderColumn string

	// LegacyDateStrict rejects legacy dates that are not YYYY-MM-DD instead
	// of passing them through to the permissive parser
	LegacyDateStrict bool
}

// LoadConfig loads config from environment variables based on ENV_TYPE
func LoadConfig() *Config {
	// Get environment type (default to LOCAL if not set)
	envType := getEnv("ENV_TYPE", "LOCAL")
	prefix := ""

	// Set prefix based on environment type
	if strings.ToUpper(envType) == "LOCAL" {
		prefix = "LOCAL_"
	} else if strings.ToUpper(envType) == "SERVER" {
		prefix = "SERVER_"
	} else {
		fmt.Printf("Warning: Unknown ENV_TYPE '%s', defaulting to LOCAL environment\n", envType)
		prefix = "LOCAL_"
		envType = "LOCAL"
	}

	fmt.Printf("Loading configuration for environment: %s\n", envType)

	return &Config{
		// Environment type
		EnvType: envType,

		// Database config - use environment-specific variables if available
		DBHost:          getEnv(prefix+"DB_HOST", getEnv("DB_HOST", "localhost")),
		DBUser:          getEnv(prefix+"DB_USER", getEnv("DB_USER", "root")),
		DBPassword:      getEnv(prefix+"DB_PASSWORD", getEnv("DB_PASSWORD", "")),
		DBName:          getEnv(prefix+"DB_NAME", getEnv("DB_NAME", "memory_app")),
		DBPort:          getEnv(prefix+"DB_PORT", getEnv("DB_PORT", "3306")),
		DBMigrationMode: getEnv(prefix+"DB_MIGRATION_MODE", getEnv("DB_MIGRATION_MODE", "auto")),

		// Server config
		ServerPort: getEnv(prefix+"SERVER_PORT", getEnv("SERVER_PORT", "3000")),

		// Redis config
		RedisHost: getEnv(prefix+"REDIS_HOST", getEnv("REDIS_HOST", "localhost")),
		RedisPort: getEnv(prefix+"REDIS_PORT", getEnv("REDIS_PORT", "6379")),
		RedisDB:   getEnvAsInt("REDIS_DB", 0),

		// External services
		GeocodingAPIURL:        getEnv("GEOCODING_API_URL", "https://geocoding-api.open-meteo.com/v1/search"),
		ReverseGeocodingAPIURL: getEnv("REVERSE_GEOCODING_API_URL", "https://nominatim.openstreetmap.org/reverse"),
		ForecastAPIURL:         getEnv("FORECAST_API_URL", "https://api.open-meteo.com/v1/forecast"),
		WeatherTimeoutMS:       getEnvAsInt("WEATHER_TIMEOUT_MS", 8000),

		// Envelope storage config
		EnvelopeTable:       getEnv("ENVELOPE_TABLE", "memories"),
		EnvelopeOrderColumn: getEnv("ENVELOPE_ORDER_COLUMN", "date"),

		LegacyDateStrict: getEnvAsBool("LEGACY_DATE_STRICT", false),
	}
}

// GetConfig returns the application configuration as a singleton
func GetConfig() *Config {
	configOnce.Do(func() {
		config = LoadConfig()
	})
	return config
}

// WeatherTimeoutMillis returns the per-call timeout for geocoding and
// forecast requests. Values at or below zero fall back to 8 seconds.
func (c *Config) WeatherTimeoutMillis() int {
	if c.WeatherTimeoutMS <= 0 {
		return 8000
	}
	return c.WeatherTimeoutMS
}

// GetDSN returns the database connection string
func (c *Config) GetDSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?charset=utf8mb4&parseTime=True&loc=Local&allowNativePasswords=true&multiStatements=true"
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// Helper function to get environment variable with default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Helper function to get environment variable as integer with default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// Helper function to get environment variable as boolean with default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
