package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// ErrMissingSecret is returned when a required secret is not configured.
var ErrMissingSecret = errors.New("required secret is not set")

// Config stores service settings.
type Config struct {
	Port      int
	DB        DB
	Auth      Auth
	Kafka     Kafka
	Geocoder  Geocoder
	Postal    Postal
	Routing   Routing
	Gateway   Gateway
	RateLimit RateLimit
	Admin     Admin
	Log       Log
}

// DB describes the PostgreSQL connection.
type DB struct {
	Host    string
	Port    string
	User    string
	Pass    string
	Name    string
	SSLMode string
}

// DSN returns a pgx-compatible connection URL.
func (d DB) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Pass),
		Host:   d.Host + ":" + d.Port,
		Path:   "/" + d.Name,
	}
	q := url.Values{}
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

// Auth holds session token settings.
type Auth struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// Kafka holds the worker consumer settings.
type Kafka struct {
	Brokers    []string
	GroupID    string
	PingsTopic string
}

// Geocoder configures the address geocoding endpoint.
type Geocoder struct {
	URL     string
	Country string
	Delay   time.Duration
}

// Postal configures the postal code lookup endpoint.
type Postal struct{ URL string }

// Routing configures the route calculation endpoint.
type Routing struct{ URL string }

// Gateway holds retry settings shared by outbound HTTP gateways.
type Gateway struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// RateLimit configures the per-client token bucket. PostalPerMinute caps
// postal lookups per account, which proxy a third-party service.
type RateLimit struct {
	Enabled         bool
	Rate            float64
	Burst           int
	TTL             time.Duration
	MaxBuckets      int
	PostalPerMinute int
}

// Admin configures the pprof and metrics listener. Port 0 disables it.
// Without credentials only loopback clients are served.
type Admin struct {
	Port int
	User string
	Pass string
}

// Log selects the logging backend.
type Log struct {
	Format string
	Level  string
	File   string
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:      DefaultPort(),
		DB:        DefaultDB(),
		Auth:      DefaultAuth(),
		Kafka:     DefaultKafka(),
		Geocoder:  DefaultGeocoder(),
		Postal:    DefaultPostal(),
		Routing:   DefaultRouting(),
		Gateway:   DefaultGateway(),
		RateLimit: DefaultRateLimit(),
		Admin:     DefaultAdmin(),
		Log:       DefaultLog(),
	}

	var errs []error
	collect := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	collect(envInt("PORT", &cfg.Port))

	envString("POSTGRES_HOST", &cfg.DB.Host)
	envString("POSTGRES_USER", &cfg.DB.User)
	envString("POSTGRES_DB", &cfg.DB.Name)
	envString("POSTGRES_SSLMODE", &cfg.DB.SSLMode)
	cfg.DB.Pass = strings.TrimSpace(os.Getenv("POSTGRES_PASSWORD"))
	if v := strings.TrimSpace(os.Getenv("POSTGRES_PORT")); v != "" {
		if _, err := strconv.Atoi(v); err != nil {
			errs = append(errs, fmt.Errorf("POSTGRES_PORT: %w", err))
		} else {
			cfg.DB.Port = v
		}
	}

	cfg.Auth.JWTSecret = strings.TrimSpace(os.Getenv("AUTH_JWT_SECRET"))
	collect(envDuration("AUTH_TOKEN_TTL", &cfg.Auth.TokenTTL))

	if v := strings.TrimSpace(os.Getenv("KAFKA_BROKERS")); v != "" {
		cfg.Kafka.Brokers = splitList(v)
	}
	envString("KAFKA_GROUP_ID", &cfg.Kafka.GroupID)
	envString("KAFKA_PINGS_TOPIC", &cfg.Kafka.PingsTopic)

	envString("GEOCODER_URL", &cfg.Geocoder.URL)
	envString("GEOCODER_COUNTRY", &cfg.Geocoder.Country)
	collect(envDuration("GEOCODER_DELAY", &cfg.Geocoder.Delay))
	envString("POSTAL_URL", &cfg.Postal.URL)
	envString("ROUTING_URL", &cfg.Routing.URL)

	collect(envInt("GATEWAY_MAX_ATTEMPTS", &cfg.Gateway.MaxAttempts))
	collect(envDuration("GATEWAY_BASE_DELAY", &cfg.Gateway.BaseDelay))
	collect(envDuration("GATEWAY_MAX_DELAY", &cfg.Gateway.MaxDelay))

	collect(envBool("RATE_LIMIT_ENABLED", &cfg.RateLimit.Enabled))
	collect(envFloat("RATE_LIMIT_RATE", &cfg.RateLimit.Rate))
	collect(envInt("RATE_LIMIT_BURST", &cfg.RateLimit.Burst))
	collect(envDuration("RATE_LIMIT_TTL", &cfg.RateLimit.TTL))
	collect(envInt("RATE_LIMIT_MAX_BUCKETS", &cfg.RateLimit.MaxBuckets))
	collect(envInt("RATE_LIMIT_POSTAL_PER_MINUTE", &cfg.RateLimit.PostalPerMinute))

	collect(envInt("ADMIN_PORT", &cfg.Admin.Port))
	envString("ADMIN_USER", &cfg.Admin.User)
	cfg.Admin.Pass = strings.TrimSpace(os.Getenv("ADMIN_PASSWORD"))

	envString("LOG_FORMAT", &cfg.Log.Format)
	envString("LOG_LEVEL", &cfg.Log.Level)
	envString("LOG_FILE", &cfg.Log.File)

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	if !pflag.CommandLine.Parsed() {
		pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
		pflag.IntVar(&cfg.Admin.Port, "admin-port", cfg.Admin.Port, "pprof and metrics port, 0 disables")
		if err := pflag.CommandLine.Parse(os.Args[1:]); err != nil {
			return nil, fmt.Errorf("parse flags: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.DB.Pass == "" {
		return fmt.Errorf("POSTGRES_PASSWORD: %w", ErrMissingSecret)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("AUTH_JWT_SECRET: %w", ErrMissingSecret)
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("invalid AUTH_TOKEN_TTL: %s", c.Auth.TokenTTL)
	}
	if c.Gateway.MaxAttempts < 1 {
		return fmt.Errorf("invalid GATEWAY_MAX_ATTEMPTS: %d", c.Gateway.MaxAttempts)
	}
	if c.Admin.Port < 0 || c.Admin.Port > 65535 || (c.Admin.Port != 0 && c.Admin.Port == c.Port) {
		return fmt.Errorf("invalid ADMIN_PORT: %d", c.Admin.Port)
	}
	if c.RateLimit.Enabled && (c.RateLimit.Rate <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("invalid rate limit: rate=%v burst=%d", c.RateLimit.Rate, c.RateLimit.Burst)
	}
	return nil
}

func envString(key string, dst *string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func envInt(key string, dst *int) error {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func envFloat(key string, dst *float64) error {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = f
	return nil
}

func envBool(key string, dst *bool) error {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = b
	return nil
}

func envDuration(key string, dst *time.Duration) error {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = d
	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
