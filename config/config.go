package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	Postgres       PostgresConfig
	GoogleCalendar GoogleCalendarConfig
	Sync           SyncConfig
	Scheduler      SchedulerConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	URL string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	// Requests per second against the Calendar API; the original service
	// allowed 600 requests per minute.
	RateLimit float64
	RateBurst int
}

// SyncConfig tunes the reconciliation engine.
type SyncConfig struct {
	Workers             int
	MaxAttempts         int
	RetryBaseDelay      time.Duration
	IncrementalLookback time.Duration
	IncrementalHorizon  time.Duration
}

// SchedulerConfig holds cron specs for periodic sync runs.
type SchedulerConfig struct {
	Enabled         bool
	IncrementalSpec string
	FullSpec        string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Postgres.URL = viper.GetString("postgres.url")
	if dbURL := viper.GetString("database_url"); dbURL != "" {
		cfg.Postgres.URL = dbURL
	}
	if cfg.Postgres.URL == "" {
		return nil, fmt.Errorf("postgres.url (or DATABASE_URL) is required")
	}

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.RateLimit = viper.GetFloat64("google_calendar.rate_limit")
	cfg.GoogleCalendar.RateBurst = viper.GetInt("google_calendar.rate_burst")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	cfg.Sync.Workers = viper.GetInt("sync.workers")
	cfg.Sync.MaxAttempts = viper.GetInt("sync.max_attempts")
	cfg.Sync.RetryBaseDelay = viper.GetDuration("sync.retry_base_delay")
	cfg.Sync.IncrementalLookback = viper.GetDuration("sync.incremental_lookback")
	cfg.Sync.IncrementalHorizon = viper.GetDuration("sync.incremental_horizon")

	cfg.Scheduler.Enabled = viper.GetBool("scheduler.enabled")
	cfg.Scheduler.IncrementalSpec = viper.GetString("scheduler.incremental_spec")
	cfg.Scheduler.FullSpec = viper.GetString("scheduler.full_spec")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 4042)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("google_calendar.rate_limit", 10.0)
	viper.SetDefault("google_calendar.rate_burst", 10)

	viper.SetDefault("sync.workers", 4)
	viper.SetDefault("sync.max_attempts", 3)
	viper.SetDefault("sync.retry_base_delay", "2s")
	viper.SetDefault("sync.incremental_lookback", "24h")
	viper.SetDefault("sync.incremental_horizon", "2160h") // 90 days

	viper.SetDefault("scheduler.enabled", true)
	viper.SetDefault("scheduler.incremental_spec", "*/15 * * * *")
	viper.SetDefault("scheduler.full_spec", "0 4 * * *")
}
