package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
)

// Cache backends supported by SURFCAST_CACHE_BACKEND.
const (
	CacheBackendFile   = "file"
	CacheBackendSQLite = "sqlite"
)

type AppConfig struct {
	// Port the HTTP API listens on.
	Port string

	// LocationID selects the active location from the static location table.
	LocationID string

	// HTTPTimeout bounds every outbound call to an upstream data source.
	HTTPTimeout time.Duration

	// CacheTTL is the maximum age of a forecast before it is regenerated.
	CacheTTL time.Duration

	// CacheBackend is "file" or "sqlite"; CachePath is the file/db location.
	CacheBackend string
	CachePath    string

	// RefreshInterval controls the background refresh schedule.
	RefreshInterval time.Duration

	LogLevel string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{
		Port:         getenvDefault("PORT", "8080"),
		LocationID:   getenvDefault("SURFCAST_LOCATION", "wrightsville-beach-nc"),
		CacheBackend: getenvDefault("SURFCAST_CACHE_BACKEND", CacheBackendFile),
		CachePath:    getenvDefault("SURFCAST_CACHE_PATH", "data/forecast.json"),
		LogLevel:     getenvDefault("SURFCAST_LOG_LEVEL", "info"),
	}

	if cfg.CacheBackend != CacheBackendFile && cfg.CacheBackend != CacheBackendSQLite {
		return nil, eris.Errorf("config: unknown cache backend %q", cfg.CacheBackend)
	}

	var err error
	if cfg.HTTPTimeout, err = getenvDuration("SURFCAST_HTTP_TIMEOUT", "15s"); err != nil {
		return nil, err
	}
	if cfg.CacheTTL, err = getenvDuration("SURFCAST_CACHE_TTL", "4h"); err != nil {
		return nil, err
	}
	if cfg.RefreshInterval, err = getenvDuration("SURFCAST_REFRESH_INTERVAL", "1h"); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, eris.Wrapf(err, "config: invalid %s", key)
	}
	return d, nil
}
