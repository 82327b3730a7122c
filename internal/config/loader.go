package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. MURAHDAHLA_DISCORD_TOKEN
const EnvPrefix = "MURAHDAHLA"

// LoadInput says where to read settings from. Both files are optional
type LoadInput struct {
	// ConfigPath is a YAML file
	ConfigPath string

	// EnvFile is loaded into the process environment first. Variables that
	// are already set win
	EnvFile string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("discord.token", "")
	v.SetDefault("discord.application_id", "")
	v.SetDefault("discord.guild_id", "")
	v.SetDefault("discord.maintenance_user_id", "")

	v.SetDefault("store.backend", "redis")
	v.SetDefault("store.postgres_dsn", "")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("metrics.addr", ":9090")
	v.SetDefault("refresh.schedule", "*/5 * * * *")

	v.SetDefault("games.alttpr_patch_url", "")
	v.SetDefault("games.smz3_seed_url", "")
	v.SetDefault("games.sm_total_seed_url", "")
	v.SetDefault("games.sm_varia_api_url", "")
	v.SetDefault("games.timeout", "10s")
	v.SetDefault("games.max_retries", 3)
	v.SetDefault("games.requests_per_sec", 2.0)

	v.SetDefault("cache.group_ttl", "10m")
}

// Load reads, merges and validates the configuration. Precedence from
// lowest: defaults, config file, environment
func Load(input *LoadInput) (*Config, error) {
	if input == nil {
		input = &LoadInput{}
	}

	if input.EnvFile != "" {
		if err := godotenv.Load(input.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if input.ConfigPath != "" {
		v.SetConfigFile(input.ConfigPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
