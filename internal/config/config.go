package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Tailscale TailscaleConfig `yaml:"tailscale"`
	Log       LogConfig       `yaml:"log"`
	Coach     CoachConfig     `yaml:"coach"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

type AuthConfig struct {
	APIKey string `yaml:"api_key"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

// LogConfig controls the process logger. File output is rotated when File is set.
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// CoachConfig selects the text generator behind the coach chat. Provider
// "none" keeps the canned replies only.
type CoachConfig struct {
	Provider          string `yaml:"provider"`
	APIKey            string `yaml:"api_key"`
	Model             string `yaml:"model"`
	BaseURL           string `yaml:"base_url"`
	TimeoutSeconds    int    `yaml:"timeout_seconds"`
	RequestsPerMinute int    `yaml:"requests_per_minute"`
}

// Timeout returns the per-request generation timeout.
func (c CoachConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// SchedulerConfig holds cron specs for the background jobs.
type SchedulerConfig struct {
	Enabled   bool   `yaml:"enabled"`
	DecaySpec string `yaml:"decay_spec"`
	TasksSpec string `yaml:"tasks_spec"`
}

const (
	CoachProviderOpenAI = "openai"
	CoachProviderNone   = "none"
)

// DSN returns a PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	sslmode := d.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, sslmode)
}

// Defaults fills zero values that have a sensible default.
func (c *Config) Defaults() {
	if c.Tailscale.Hostname == "" {
		c.Tailscale.Hostname = "hybridcoach"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.MaxSizeMB == 0 {
		c.Log.MaxSizeMB = 50
	}
	if c.Log.MaxBackups == 0 {
		c.Log.MaxBackups = 3
	}
	if c.Log.MaxAgeDays == 0 {
		c.Log.MaxAgeDays = 28
	}
	if c.Coach.Provider == "" {
		c.Coach.Provider = CoachProviderNone
	}
	if c.Coach.Model == "" {
		c.Coach.Model = "gpt-4o-mini"
	}
	if c.Coach.TimeoutSeconds == 0 {
		c.Coach.TimeoutSeconds = 30
	}
	if c.Coach.RequestsPerMinute == 0 {
		c.Coach.RequestsPerMinute = 20
	}
	if c.Scheduler.DecaySpec == "" {
		c.Scheduler.DecaySpec = "@hourly"
	}
	if c.Scheduler.TasksSpec == "" {
		c.Scheduler.TasksSpec = "0 5 * * *"
	}
}

// Load reads config from a YAML file, then applies environment variable overrides.
// Env vars use the prefix HYBRIDCOACH_ and underscore-separated paths:
//
//	HYBRIDCOACH_SERVER_HOST, HYBRIDCOACH_SERVER_PORT,
//	HYBRIDCOACH_DB_HOST, HYBRIDCOACH_DB_PORT, HYBRIDCOACH_DB_NAME,
//	HYBRIDCOACH_DB_USER, HYBRIDCOACH_DB_PASSWORD, HYBRIDCOACH_DB_SSLMODE,
//	HYBRIDCOACH_AUTH_API_KEY, HYBRIDCOACH_TAILSCALE_ENABLED,
//	HYBRIDCOACH_LOG_LEVEL, HYBRIDCOACH_LOG_FILE,
//	HYBRIDCOACH_COACH_PROVIDER, HYBRIDCOACH_COACH_API_KEY,
//	HYBRIDCOACH_COACH_MODEL, HYBRIDCOACH_COACH_BASE_URL,
//	HYBRIDCOACH_SCHEDULER_ENABLED
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)
	cfg.Defaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	setString := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	setInt := func(key string, dst *int) {
		if v := os.Getenv(key); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				*dst = n
			}
		}
	}
	setBool := func(key string, dst *bool) {
		if v := os.Getenv(key); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				*dst = b
			}
		}
	}

	setString("HYBRIDCOACH_SERVER_HOST", &cfg.Server.Host)
	setInt("HYBRIDCOACH_SERVER_PORT", &cfg.Server.Port)
	setString("HYBRIDCOACH_DB_HOST", &cfg.Database.Host)
	setInt("HYBRIDCOACH_DB_PORT", &cfg.Database.Port)
	setString("HYBRIDCOACH_DB_NAME", &cfg.Database.Name)
	setString("HYBRIDCOACH_DB_USER", &cfg.Database.User)
	setString("HYBRIDCOACH_DB_PASSWORD", &cfg.Database.Password)
	setString("HYBRIDCOACH_DB_SSLMODE", &cfg.Database.SSLMode)
	setString("HYBRIDCOACH_AUTH_API_KEY", &cfg.Auth.APIKey)
	setBool("HYBRIDCOACH_TAILSCALE_ENABLED", &cfg.Tailscale.Enabled)
	setString("HYBRIDCOACH_LOG_LEVEL", &cfg.Log.Level)
	setString("HYBRIDCOACH_LOG_FILE", &cfg.Log.File)
	setString("HYBRIDCOACH_COACH_PROVIDER", &cfg.Coach.Provider)
	setString("HYBRIDCOACH_COACH_API_KEY", &cfg.Coach.APIKey)
	setString("HYBRIDCOACH_COACH_MODEL", &cfg.Coach.Model)
	setString("HYBRIDCOACH_COACH_BASE_URL", &cfg.Coach.BaseURL)
	setBool("HYBRIDCOACH_SCHEDULER_ENABLED", &cfg.Scheduler.Enabled)
}

func (c *Config) validate() error {
	if c.Server.Port == 0 && !c.Tailscale.Enabled {
		return fmt.Errorf("server.port is required")
	}
	if c.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if c.Database.Port == 0 {
		return fmt.Errorf("database.port is required")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("database.name is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database.user is required")
	}
	if c.Auth.APIKey == "" && !c.Tailscale.Enabled {
		return fmt.Errorf("auth.api_key is required unless tailscale is enabled")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	switch c.Coach.Provider {
	case CoachProviderNone:
	case CoachProviderOpenAI:
		if c.Coach.APIKey == "" && c.Coach.BaseURL == "" {
			return fmt.Errorf("coach.api_key or coach.base_url is required for provider %q", c.Coach.Provider)
		}
	default:
		return fmt.Errorf("coach.provider %q is not one of openai, none", c.Coach.Provider)
	}
	return nil
}
