package config

import (
	"os"
	"path/filepath"
	"time"
)

type Config struct {
	APIBaseURL string
	TokenFile  string
	CacheTTL   time.Duration
}

func Load() Config {
	return Config{
		APIBaseURL: getEnv("TRAVELPLAN_API_URL", "http://localhost:3000/api"),
		TokenFile:  getEnv("TRAVELPLAN_TOKEN_FILE", defaultTokenFile()),
		CacheTTL:   getDuration("TRAVELPLAN_CACHE_TTL", 30*time.Second),
	}
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".travelplan/token"
	}
	return filepath.Join(home, ".travelplan", "token")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
