// Package config loads bot settings from a YAML file, a .env file and
// MURAHDAHLA_* environment variables.
package config

import "time"

// Config is the complete bot configuration
type Config struct {
	Discord DiscordConfig `mapstructure:"discord"`
	Store   StoreConfig   `mapstructure:"store"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Refresh RefreshConfig `mapstructure:"refresh"`
	Games   GamesConfig   `mapstructure:"games"`
	Cache   CacheConfig   `mapstructure:"cache"`
}

// DiscordConfig holds the bot credentials
type DiscordConfig struct {
	Token         string `mapstructure:"token" validate:"required"`
	ApplicationID string `mapstructure:"application_id"`

	// GuildID registers commands in one guild only, for development
	GuildID string `mapstructure:"guild_id"`

	// MaintenanceUserID receives a DM for every failed command
	MaintenanceUserID string `mapstructure:"maintenance_user_id"`
}

// StoreConfig selects the persistence backend
type StoreConfig struct {
	Backend     string `mapstructure:"backend" validate:"required,oneof=redis postgres"`
	PostgresDSN string `mapstructure:"postgres_dsn" validate:"required_if=Backend postgres"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr" validate:"required_with=Password"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" validate:"gte=0"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"loglevel"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

type MetricsConfig struct {
	// Addr is where /metrics is served; empty disables the endpoint
	Addr string `mapstructure:"addr" validate:"omitempty,hostname_port"`
}

type RefreshConfig struct {
	// Schedule is a standard five field cron spec; empty disables it
	Schedule string `mapstructure:"schedule" validate:"omitempty,cronspec"`
}

// GamesConfig points the seed resolvers at their sites
type GamesConfig struct {
	ALTTPRPatchURL string        `mapstructure:"alttpr_patch_url" validate:"omitempty,url"`
	SMZ3SeedURL    string        `mapstructure:"smz3_seed_url" validate:"omitempty,url"`
	SMTotalSeedURL string        `mapstructure:"sm_total_seed_url" validate:"omitempty,url"`
	SMVARIAAPIURL  string        `mapstructure:"sm_varia_api_url" validate:"omitempty,url"`
	Timeout        time.Duration `mapstructure:"timeout" validate:"gt=0"`
	MaxRetries     int           `mapstructure:"max_retries" validate:"gte=0,lte=10"`
	RequestsPerSec float64       `mapstructure:"requests_per_sec" validate:"gt=0"`
}

type CacheConfig struct {
	GroupTTL time.Duration `mapstructure:"group_ttl" validate:"gt=0"`
}
