// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// NotifyDuration is how long a notification stays visible. Defaults to 4s.
	NotifyDuration time.Duration

	// SessionTTL is how long an untouched page session, and its draft, is
	// kept in memory. Defaults to 12h; 0 keeps sessions until restart.
	SessionTTL time.Duration

	// MaxBodyBytes caps request body size. Defaults to 64 KiB.
	MaxBodyBytes int64

	// Location is the time zone export filenames are stamped in.
	// Set REPORT_TIMEZONE to an IANA name; defaults to the server's local zone.
	Location *time.Location
}

// Load reads configuration from environment variables and returns a Config.
// Variables from a .env file in the working directory are applied first
// without overriding the real environment. Returns an error naming every
// variable whose value could not be parsed.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("read .env: %w", err)
	}

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
	}

	var invalid []string

	var err error
	if cfg.NotifyDuration, err = time.ParseDuration(getEnv("NOTIFY_DURATION", "4s")); err != nil || cfg.NotifyDuration <= 0 {
		invalid = append(invalid, "NOTIFY_DURATION")
	}
	if cfg.SessionTTL, err = time.ParseDuration(getEnv("SESSION_TTL", "12h")); err != nil || cfg.SessionTTL < 0 {
		invalid = append(invalid, "SESSION_TTL")
	}
	if cfg.MaxBodyBytes, err = strconv.ParseInt(getEnv("MAX_BODY_BYTES", "65536"), 10, 64); err != nil || cfg.MaxBodyBytes <= 0 {
		invalid = append(invalid, "MAX_BODY_BYTES")
	}
	if cfg.Location, err = time.LoadLocation(getEnv("REPORT_TIMEZONE", "Local")); err != nil {
		invalid = append(invalid, "REPORT_TIMEZONE")
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
