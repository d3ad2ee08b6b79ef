package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultSessionSecret is used outside production when no secret is configured.
const DefaultSessionSecret = "dev-secret-key-change-me"

// Config holds all application configuration
type Config struct {
	App          AppConfig
	Database     DatabaseConfig
	Session      SessionConfig
	Notification NotificationConfig
	Log          LogConfig
	HTTP         HTTPConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
	Port string
}

// DatabaseConfig holds the SQLite order store location
type DatabaseConfig struct {
	Path string
}

// SessionConfig holds the cookie session signing secret used for flash messages
type SessionConfig struct {
	Secret string
}

// NotificationConfig holds the outbound order-confirmation settings.
// An empty TopicARN disables notifications entirely.
type NotificationConfig struct {
	TopicARN       string
	Region         string
	Endpoint       string // optional override for SNS-compatible endpoints
	AccessKey      string // optional static credentials; default chain otherwise
	SecretKey      string
	PublishTimeout time.Duration
}

// Enabled reports whether a notification destination is configured.
func (n *NotificationConfig) Enabled() bool {
	return strings.TrimSpace(n.TopicARN) != ""
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Load loads configuration from TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with STOREFRONT_ prefix (e.g., STOREFRONT_DATABASE_PATH)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("STOREFRONT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Database: DatabaseConfig{
			Path: v.GetString("database.path"),
		},
		Session: SessionConfig{
			Secret: v.GetString("session.secret"),
		},
		Notification: NotificationConfig{
			TopicARN:       v.GetString("notification.topic_arn"),
			Region:         v.GetString("notification.region"),
			Endpoint:       v.GetString("notification.endpoint"),
			AccessKey:      v.GetString("notification.access_key"),
			SecretKey:      v.GetString("notification.secret_key"),
			PublishTimeout: v.GetDuration("notification.publish_timeout"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:  v.GetDuration("http.read_timeout"),
			WriteTimeout: v.GetDuration("http.write_timeout"),
			IdleTimeout:  v.GetDuration("http.idle_timeout"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "storefront-backend"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Port == "" {
		cfg.App.Port = "8080"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "orders.db"
	}
	if cfg.Session.Secret == "" && cfg.App.Env != "production" {
		cfg.Session.Secret = DefaultSessionSecret
	}
	if cfg.Notification.Region == "" {
		cfg.Notification.Region = "us-east-1"
	}
	if cfg.Notification.PublishTimeout == 0 {
		cfg.Notification.PublishTimeout = 5 * time.Second
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 15 * time.Second
	}
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 15 * time.Second
	}
	if cfg.HTTP.IdleTimeout == 0 {
		cfg.HTTP.IdleTimeout = 60 * time.Second
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if c.Notification.PublishTimeout < 0 {
		return fmt.Errorf("notification.publish_timeout cannot be negative")
	}

	if c.App.Env == "production" {
		if c.Session.Secret == "" || c.Session.Secret == DefaultSessionSecret {
			return fmt.Errorf("session.secret is required in production")
		}
		if len(c.Session.Secret) < 32 {
			return fmt.Errorf("session.secret must be at least 32 characters in production")
		}
	}

	return nil
}
