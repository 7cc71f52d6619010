package config

import (
	"os"
	"strings"
	"time"
)

// Config holds the runtime settings shared by the api, webapp, and seed
// commands. Every field has a working local-development fallback.
type Config struct {
	Port           string
	DatabaseDSN    string
	AllowedOrigins []string
	StoreTimeout   time.Duration
	GinMode        string
	WebappPort     string
	APIURL         string
}

// Load reads environment variables and returns a fully populated Config.
func Load() Config {
	timeout := 5 * time.Second
	if v := os.Getenv("STORE_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			timeout = parsed
		}
	}

	return Config{
		Port:           envOrDefault("PORT", "5000"),
		DatabaseDSN:    envOrDefault("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=cafes port=5432 sslmode=disable"),
		AllowedOrigins: parseList("ALLOWED_ORIGINS", []string{"http://localhost:5001"}),
		StoreTimeout:   timeout,
		GinMode:        os.Getenv("GIN_MODE"),
		WebappPort:     envOrDefault("WEBAPP_PORT", "5001"),
		APIURL:         envOrDefault("API_URL", "http://127.0.0.1:5000"),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
