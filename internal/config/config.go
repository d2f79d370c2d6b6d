package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	Events   EventsConfig   `mapstructure:"events"   validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains the database connection settings. The URL is
// optional: when empty the server falls back to the in-memory user store,
// which is only suitable for development.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"omitempty"`
}

// AuthConfig contains credential issuance settings. TokenSecret has no
// default and must be supplied by the environment; the process refuses to
// start without it.
type AuthConfig struct {
	TokenSecret          string `mapstructure:"token_secret"           validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}

// EventsConfig contains event bus tuning settings. SubscriberBuffer is the
// per-subscription delivery buffer; when a subscriber falls further behind
// than this, its oldest undelivered snapshots are dropped.
type EventsConfig struct {
	SubscriberBuffer int `mapstructure:"subscriber_buffer" validate:"required,gt=0"`
}
