package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsAndEnvironment(t *testing.T) {
	t.Setenv("MURAHDAHLA_DISCORD_TOKEN", "env-token")
	t.Setenv("MURAHDAHLA_REDIS_DB", "2")

	cfg, err := Load(&LoadInput{})
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.Discord.Token)
	assert.Equal(t, "redis", cfg.Store.Backend)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "*/5 * * * *", cfg.Refresh.Schedule)
	assert.Equal(t, 10*time.Second, cfg.Games.Timeout)
	assert.Equal(t, 3, cfg.Games.MaxRetries)
	assert.Equal(t, 10*time.Minute, cfg.Cache.GroupTTL)
}

func TestLoad_File(t *testing.T) {
	cfg, err := Load(&LoadInput{ConfigPath: "testdata/config.yaml"})
	require.NoError(t, err)

	assert.Equal(t, "file-token", cfg.Discord.Token)
	assert.Equal(t, "1234", cfg.Discord.MaintenanceUserID)
	assert.Equal(t, "postgres", cfg.Store.Backend)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "*/2 * * * *", cfg.Refresh.Schedule)
	assert.Equal(t, 30*time.Second, cfg.Games.Timeout)
	assert.Equal(t, time.Minute, cfg.Cache.GroupTTL)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	t.Setenv("MURAHDAHLA_LOG_LEVEL", "warn")

	cfg, err := Load(&LoadInput{ConfigPath: "testdata/config.yaml"})
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_EnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("MURAHDAHLA_DISCORD_TOKEN=dotenv-token\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("MURAHDAHLA_DISCORD_TOKEN") })

	cfg, err := Load(&LoadInput{EnvFile: envFile})
	require.NoError(t, err)

	assert.Equal(t, "dotenv-token", cfg.Discord.Token)
}

func TestLoad_MissingEnvFileIsIgnored(t *testing.T) {
	t.Setenv("MURAHDAHLA_DISCORD_TOKEN", "env-token")

	_, err := Load(&LoadInput{EnvFile: filepath.Join(t.TempDir(), "missing.env")})
	assert.NoError(t, err)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := Load(&LoadInput{ConfigPath: "testdata/missing.yaml"})
	assert.Error(t, err)
}

func TestLoad_MissingToken(t *testing.T) {
	_, err := Load(&LoadInput{})

	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "Config.Discord.Token")
}

func validConfig() *Config {
	return &Config{
		Discord: DiscordConfig{Token: "token"},
		Store:   StoreConfig{Backend: "redis"},
		Redis:   RedisConfig{Addr: "localhost:6379"},
		Log:     LogConfig{Level: "info", Format: "text"},
		Metrics: MetricsConfig{Addr: ":9090"},
		Refresh: RefreshConfig{Schedule: "*/5 * * * *"},
		Games:   GamesConfig{Timeout: time.Second, MaxRetries: 1, RequestsPerSec: 1},
		Cache:   CacheConfig{GroupTTL: time.Minute},
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"valid", func(*Config) {}, ""},
		{"refresh disabled", func(c *Config) { c.Refresh.Schedule = "" }, ""},
		{"metrics disabled", func(c *Config) { c.Metrics.Addr = "" }, ""},
		{"unknown backend", func(c *Config) { c.Store.Backend = "mysql" }, "Backend"},
		{"postgres without dsn", func(c *Config) { c.Store.Backend = "postgres" }, "PostgresDSN"},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, "loglevel"},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, "Format"},
		{"bad schedule", func(c *Config) { c.Refresh.Schedule = "every minute" }, "cronspec"},
		{"bad metrics addr", func(c *Config) { c.Metrics.Addr = "9090" }, "Metrics.Addr"},
		{"bad seed url", func(c *Config) { c.Games.SMZ3SeedURL = "not a url" }, "SMZ3SeedURL"},
		{"zero timeout", func(c *Config) { c.Games.Timeout = 0 }, "Timeout"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)

			err := Validate(cfg)
			if tc.field == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}
