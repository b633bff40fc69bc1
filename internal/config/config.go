// Package config loads application configuration from struct defaults, an optional YAML file and
// environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// ConfigPathEnvVar names the environment variable pointing at an optional YAML config file.
const ConfigPathEnvVar = "CONFIG_PATH"

// Config holds the application configuration.
type Config struct {
	App      AppConfig      `koanf:"app"`
	Logger   LoggerConfig   `koanf:"logger"`
	Database DatabaseConfig `koanf:"database"`
	Server   ServerConfig   `koanf:"server"`
	Auth     AuthConfig     `koanf:"auth"`
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string `koanf:"environment"`
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string `koanf:"level"`
}

// DatabaseConfig holds SQLite storage configuration.
type DatabaseConfig struct {
	Path string `koanf:"path"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string        `koanf:"port"`
	ReadTimeout    time.Duration `koanf:"read_timeout"`
	WriteTimeout   time.Duration `koanf:"write_timeout"`
	IdleTimeout    time.Duration `koanf:"idle_timeout"`
	AllowedOrigins []string      `koanf:"allowed_origins"`
	// RateLimit is the number of requests per minute allowed from one IP. Zero disables it.
	RateLimit int `koanf:"rate_limit"`
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	// KeyPath is the directory holding auth.key, the PASETO v4 symmetric key.
	KeyPath             string        `koanf:"key_path"`
	AccessTokenDuration time.Duration `koanf:"access_token_duration"`
	// PolicyPath optionally overrides the embedded authorization policy.
	PolicyPath string `koanf:"policy_path"`
	// LoginRate is the number of login attempts per minute allowed from one IP.
	LoginRate int `koanf:"login_rate"`
}

// envKeys maps environment variables onto config paths. Anything else in the environment is ignored.
var envKeys = map[string]string{
	"ENV":                    "app.environment",
	"LOG_LEVEL":              "logger.level",
	"DATABASE_PATH":          "database.path",
	"SERVER_PORT":            "server.port",
	"SERVER_READ_TIMEOUT":    "server.read_timeout",
	"SERVER_WRITE_TIMEOUT":   "server.write_timeout",
	"SERVER_IDLE_TIMEOUT":    "server.idle_timeout",
	"SERVER_ALLOWED_ORIGINS": "server.allowed_origins",
	"SERVER_RATE_LIMIT":      "server.rate_limit",
	"AUTH_KEY_PATH":          "auth.key_path",
	"AUTH_POLICY_PATH":       "auth.policy_path",
	"AUTH_LOGIN_RATE":        "auth.login_rate",
	"ACCESS_TOKEN_DURATION":  "auth.access_token_duration",
}

func defaultConfig() *Config {
	return &Config{
		App:    AppConfig{Environment: "development"},
		Logger: LoggerConfig{Level: "info"},
		Database: DatabaseConfig{
			Path: "~/Foodgram/foodgram.db",
		},
		Server: ServerConfig{
			Port:           "8080",
			ReadTimeout:    15 * time.Second,
			WriteTimeout:   15 * time.Second,
			IdleTimeout:    60 * time.Second,
			AllowedOrigins: []string{"*"},
			RateLimit:      300,
		},
		Auth: AuthConfig{
			KeyPath:             "~/Foodgram",
			AccessTokenDuration: 24 * time.Hour,
			LoginRate:           10,
		},
	}
}

// LoadConfig loads configuration with the following precedence:
// 1. Environment variables (highest priority).
// 2. The YAML file named by CONFIG_PATH, if set.
// 3. Default values (lowest priority).
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := os.Getenv(ConfigPathEnvVar); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := splitList(k, "server.allowed_origins"); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.expandPaths(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// envTransform maps a known environment variable to its config path. An empty result tells the
// provider to skip the variable.
func envTransform(key string) string {
	return envKeys[key]
}

// splitList turns a comma-separated string (as set from the environment) into a string slice.
func splitList(k *koanf.Koanf, path string) error {
	raw, ok := k.Get(path).(string)
	if !ok {
		return nil
	}

	var items []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	if err := k.Set(path, items); err != nil {
		return fmt.Errorf("failed to set %s: %w", path, err)
	}
	return nil
}

// Validate checks that all required config values are present and valid.
func (c *Config) Validate() error {
	if c.App.Environment == "" {
		return errors.New("ENV is required")
	}

	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
	}
	if !validEnvs[c.App.Environment] {
		return fmt.Errorf("invalid environment: %s (must be development, staging, or production)", c.App.Environment)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.Logger.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Database.Path == "" {
		return errors.New("database path cannot be empty")
	}
	if c.Server.Port == "" {
		return errors.New("server port cannot be empty")
	}
	if c.Server.RateLimit < 0 {
		return fmt.Errorf("invalid rate limit: %d", c.Server.RateLimit)
	}
	if c.Auth.LoginRate <= 0 {
		return fmt.Errorf("invalid login rate: %d (must be positive)", c.Auth.LoginRate)
	}
	if c.Auth.AccessTokenDuration <= 0 {
		return fmt.Errorf("invalid access token duration: %s", c.Auth.AccessTokenDuration)
	}

	return nil
}

// IsProduction reports whether the server runs in the production environment.
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func (c *Config) expandPaths() error {
	dbPath, err := expandPath(c.Database.Path, "")
	if err != nil {
		return fmt.Errorf("invalid database path: %w", err)
	}
	c.Database.Path = dbPath

	keyPath, err := expandPath(c.Auth.KeyPath, filepath.Dir(dbPath))
	if err != nil {
		return fmt.Errorf("invalid auth key path: %w", err)
	}
	c.Auth.KeyPath = keyPath

	if c.Auth.PolicyPath != "" {
		policyPath, err := expandPath(c.Auth.PolicyPath, "")
		if err != nil {
			return fmt.Errorf("invalid policy path: %w", err)
		}
		c.Auth.PolicyPath = policyPath
	}
	return nil
}

// expandPath expands ~ and makes the path absolute.
// If path is empty and defaultPath is provided, uses the default.
func expandPath(path, defaultPath string) (string, error) {
	if path == "" {
		return defaultPath, nil
	}

	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(homeDir, path[2:])
	}

	if !filepath.IsAbs(path) {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("failed to get absolute path: %w", err)
		}
		path = absPath
	}

	return filepath.Clean(path), nil
}
