package config_test

import (
	"io"
	"os"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"logistics-backoffice/internal/config"
)

var allKeys = []string{
	"PORT", "POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB",
	"POSTGRES_SSLMODE", "AUTH_JWT_SECRET", "AUTH_TOKEN_TTL", "KAFKA_BROKERS", "KAFKA_GROUP_ID",
	"KAFKA_PINGS_TOPIC", "GEOCODER_URL", "GEOCODER_COUNTRY", "GEOCODER_DELAY", "POSTAL_URL",
	"ROUTING_URL", "GATEWAY_MAX_ATTEMPTS", "GATEWAY_BASE_DELAY", "GATEWAY_MAX_DELAY",
	"RATE_LIMIT_ENABLED", "RATE_LIMIT_RATE", "RATE_LIMIT_BURST", "RATE_LIMIT_TTL",
	"RATE_LIMIT_MAX_BUCKETS", "RATE_LIMIT_POSTAL_PER_MINUTE", "ADMIN_PORT", "ADMIN_USER",
	"ADMIN_PASSWORD", "LOG_FORMAT", "LOG_LEVEL", "LOG_FILE",
}

func resetEnv(t *testing.T, args ...string) {
	t.Helper()
	for _, k := range allKeys {
		t.Setenv(k, "")
	}
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("AUTH_JWT_SECRET", "jwt-secret")

	oldArgs := os.Args
	oldCommandLine := pflag.CommandLine
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	pflag.CommandLine = fs
	os.Args = append([]string{"cmd"}, args...)
	t.Cleanup(func() {
		os.Args = oldArgs
		pflag.CommandLine = oldCommandLine
	})
}

func TestLoad_Defaults(t *testing.T) {
	resetEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, "127.0.0.1", cfg.DB.Host)
	require.Equal(t, "5432", cfg.DB.Port)
	require.Equal(t, "secret", cfg.DB.Pass)
	require.Equal(t, "disable", cfg.DB.SSLMode)
	require.Equal(t, 12*time.Hour, cfg.Auth.TokenTTL)
	require.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	require.Equal(t, time.Second, cfg.Geocoder.Delay)
	require.Equal(t, "br", cfg.Geocoder.Country)
	require.Equal(t, 4, cfg.Gateway.MaxAttempts)
	require.True(t, cfg.RateLimit.Enabled)
	require.Equal(t, 30, cfg.RateLimit.PostalPerMinute)
	require.Equal(t, 6060, cfg.Admin.Port)
	require.Empty(t, cfg.Admin.Pass)
	require.Equal(t, "slog", cfg.Log.Format)
}

func TestLoad_EnvOverrides(t *testing.T) {
	resetEnv(t)

	t.Setenv("PORT", "9090")
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("POSTGRES_PORT", "15432")
	t.Setenv("POSTGRES_USER", "u")
	t.Setenv("POSTGRES_DB", "service")
	t.Setenv("AUTH_TOKEN_TTL", "30m")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092")
	t.Setenv("GEOCODER_DELAY", "250ms")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("LOG_FORMAT", "zap")
	t.Setenv("LOG_FILE", "/tmp/backoffice.log")
	t.Setenv("ADMIN_PORT", "0")
	t.Setenv("ADMIN_USER", "ops")
	t.Setenv("ADMIN_PASSWORD", "pw")

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, "db", cfg.DB.Host)
	require.Equal(t, "15432", cfg.DB.Port)
	require.Equal(t, "u", cfg.DB.User)
	require.Equal(t, "service", cfg.DB.Name)
	require.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
	require.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	require.Equal(t, 250*time.Millisecond, cfg.Geocoder.Delay)
	require.False(t, cfg.RateLimit.Enabled)
	require.Equal(t, "zap", cfg.Log.Format)
	require.Equal(t, "/tmp/backoffice.log", cfg.Log.File)
	require.Equal(t, config.Admin{Port: 0, User: "ops", Pass: "pw"}, cfg.Admin)
}

func TestLoad_MissingSecrets(t *testing.T) {
	resetEnv(t)
	t.Setenv("POSTGRES_PASSWORD", "")

	cfg, err := config.Load()
	require.ErrorIs(t, err, config.ErrMissingSecret)
	require.Nil(t, cfg)

	resetEnv(t)
	t.Setenv("AUTH_JWT_SECRET", "")

	cfg, err = config.Load()
	require.ErrorIs(t, err, config.ErrMissingSecret)
	require.Nil(t, cfg)
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"PORT":                 "70000",
		"POSTGRES_PORT":        "not-a-number",
		"AUTH_TOKEN_TTL":       "forever",
		"RATE_LIMIT_BURST":     "lots",
		"GATEWAY_MAX_ATTEMPTS": "0",
		"ADMIN_PORT":           "8080",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			resetEnv(t)
			t.Setenv(key, value)

			cfg, err := config.Load()
			require.Error(t, err)
			require.Nil(t, cfg)
		})
	}
}

func TestLoad_PortFlagOverridesEnv(t *testing.T) {
	resetEnv(t, "--port=7070")
	t.Setenv("PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, 7070, cfg.Port)
}

func TestLoad_FlagsParseError(t *testing.T) {
	resetEnv(t, "--port=not-a-number")

	cfg, err := config.Load()
	require.Error(t, err)
	require.Nil(t, cfg)
	require.Contains(t, err.Error(), "parse flags")
}

func TestDB_DSN(t *testing.T) {
	t.Parallel()

	d := config.DB{Host: "h", Port: "5432", User: "u", Pass: "p@ss", Name: "n", SSLMode: "disable"}
	require.Equal(t, "postgres://u:p%40ss@h:5432/n?sslmode=disable", d.DSN())
}
