// Package config provides configuration management for the box picker API.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server  ServerConfig
	Catalog CatalogConfig
	Auth    AuthConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port               string
	RateLimit          int
	RateWindow         time.Duration
	RequestTimeout     time.Duration
	ShutdownTimeout    time.Duration
	IdempotencyEnabled bool
	CORSOrigins        []string
	SwaggerUser        string
	SwaggerPass        string
}

// CatalogConfig holds box catalog configuration.
type CatalogConfig struct {
	// File points at a YAML catalog definition. Empty selects the
	// built-in catalog.
	File string
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	Enabled bool
	APIKeys map[string]bool
	// JWTSecretKey switches authentication to bearer-token mode when set.
	JWTSecretKey string
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:               getEnv("PORT", "8080"),
			RateLimit:          getEnvInt("RATE_LIMIT", 100),
			RateWindow:         getEnvDuration("RATE_WINDOW", time.Minute),
			RequestTimeout:     getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
			ShutdownTimeout:    getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
			IdempotencyEnabled: getEnvBool("IDEMPOTENCY_ENABLED", true),
			CORSOrigins:        parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:        getEnv("SWAGGER_USER", ""),
			SwaggerPass:        getEnv("SWAGGER_PASS", ""),
		},
		Catalog: CatalogConfig{
			File: getEnv("BOX_CATALOG_FILE", ""),
		},
		Auth: AuthConfig{
			Enabled:      getEnvBool("AUTH_ENABLED", false),
			APIKeys:      parseAPIKeys(os.Getenv("API_KEYS")),
			JWTSecretKey: getEnv("JWT_SECRET_KEY", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseAPIKeys(s string) map[string]bool {
	if s == "" {
		return nil
	}
	keys := strings.Split(s, ",")
	result := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			result[k] = true
		}
	}
	return result
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
