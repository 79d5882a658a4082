package config

import "time"

const defaultPort = 8080

var defaultDB = DB{
	Host:    "127.0.0.1",
	Port:    "5432",
	User:    "backoffice",
	Name:    "backoffice",
	SSLMode: "disable",
}

var defaultAuth = Auth{TokenTTL: 12 * time.Hour}

var defaultKafka = Kafka{
	Brokers:    []string{"localhost:9092"},
	GroupID:    "backoffice-tracking",
	PingsTopic: "courier.pings",
}

var defaultGeocoder = Geocoder{
	URL:     "https://nominatim.openstreetmap.org",
	Country: "br",
	Delay:   time.Second,
}

var defaultGateway = Gateway{
	MaxAttempts: 4,
	BaseDelay:   150 * time.Millisecond,
	MaxDelay:    2 * time.Second,
}

var defaultRateLimit = RateLimit{
	Enabled:         true,
	Rate:            20,
	Burst:           40,
	TTL:             5 * time.Minute,
	MaxBuckets:      10000,
	PostalPerMinute: 30,
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings. The password has no default.
func DefaultDB() DB {
	return defaultDB
}

// DefaultAuth returns the default session settings. The signing secret has no default.
func DefaultAuth() Auth {
	return defaultAuth
}

// DefaultKafka returns the default consumer settings.
func DefaultKafka() Kafka {
	k := defaultKafka
	k.Brokers = append([]string(nil), defaultKafka.Brokers...)
	return k
}

// DefaultGeocoder returns the default geocoder settings.
func DefaultGeocoder() Geocoder {
	return defaultGeocoder
}

// DefaultPostal returns the default postal lookup settings.
func DefaultPostal() Postal {
	return Postal{URL: "https://viacep.com.br"}
}

// DefaultRouting returns the default routing settings.
func DefaultRouting() Routing {
	return Routing{URL: "https://router.project-osrm.org"}
}

// DefaultGateway returns the default gateway retry settings.
func DefaultGateway() Gateway {
	return defaultGateway
}

// DefaultRateLimit returns the default rate limit settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}

// DefaultLog returns the default logging settings.
func DefaultLog() Log {
	return Log{Format: "slog", Level: "info"}
}

// DefaultAdmin returns the default admin listener settings.
func DefaultAdmin() Admin {
	return Admin{Port: 6060}
}
