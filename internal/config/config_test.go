package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-report/internal/config"
)

// clearEnv blanks every variable Load reads and moves into an empty
// directory so no .env file is picked up.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "LOG_LEVEL", "CORS_ORIGINS", "NOTIFY_DURATION",
		"SESSION_TTL", "MAX_BODY_BYTES", "REPORT_TIMEZONE",
	} {
		t.Setenv(k, "")
	}
	t.Chdir(t.TempDir())
}

// TestLoad_defaults verifies that every value falls back to its default
// when nothing is set.
func TestLoad_defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	require.Equal(t, 4*time.Second, cfg.NotifyDuration)
	require.Equal(t, 12*time.Hour, cfg.SessionTTL)
	require.EqualValues(t, 65536, cfg.MaxBodyBytes)
	require.Equal(t, time.Local, cfg.Location)
}

// TestLoad_overrides verifies that all values can be overridden via env vars.
func TestLoad_overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("NOTIFY_DURATION", "2500ms")
	t.Setenv("SESSION_TTL", "0s")
	t.Setenv("MAX_BODY_BYTES", "1024")
	t.Setenv("REPORT_TIMEZONE", "Asia/Ho_Chi_Minh")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
	require.Equal(t, 2500*time.Millisecond, cfg.NotifyDuration)
	require.Equal(t, time.Duration(0), cfg.SessionTTL)
	require.EqualValues(t, 1024, cfg.MaxBodyBytes)
	require.Equal(t, "Asia/Ho_Chi_Minh", cfg.Location.String())
}

// TestLoad_invalidValues verifies that every malformed variable is named in
// a single error.
func TestLoad_invalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("NOTIFY_DURATION", "soon")
	t.Setenv("MAX_BODY_BYTES", "-1")
	t.Setenv("REPORT_TIMEZONE", "Mars/Olympus_Mons")

	_, err := config.Load()

	require.Error(t, err)
	require.ErrorContains(t, err, "NOTIFY_DURATION")
	require.ErrorContains(t, err, "MAX_BODY_BYTES")
	require.ErrorContains(t, err, "REPORT_TIMEZONE")
	require.NotContains(t, err.Error(), "SESSION_TTL")
}

// TestLoad_dotEnv verifies that a .env file fills in unset variables but
// never overrides the real environment.
func TestLoad_dotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("PORT=7070\nLOG_LEVEL=warn\n"), 0o600))
	t.Chdir(dir)

	// Unset PORT entirely so the file may provide it; t.Setenv above
	// restores the original value when the test ends.
	require.NoError(t, os.Unsetenv("PORT"))
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "7070", cfg.Port)
	require.Equal(t, "error", cfg.LogLevel)
}
