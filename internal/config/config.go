// Package config resolves application settings from defaults, an optional
// YAML file, and RESETAPAD_-prefixed environment variables, in that order of
// increasing precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config represents the application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Assets   AssetsConfig   `mapstructure:"assets"`
	Theme    ThemeConfig    `mapstructure:"theme"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// DatabaseConfig holds the SQLite settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// AssetsConfig holds static asset settings.
type AssetsConfig struct {
	Prefix string `mapstructure:"prefix"`
}

// ThemeConfig holds the palette applied to new letterheads.
type ThemeConfig struct {
	Default string `mapstructure:"default"`
	Variant string `mapstructure:"variant"`
}

// Addr formats the listen address.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Default returns the configuration defaults.
func Default() *Config {
	return &Config{
		Server:   ServerConfig{Host: "127.0.0.1", Port: 8087},
		Database: DatabaseConfig{Path: "resetapad.db"},
		Assets:   AssetsConfig{Prefix: "/assets"},
		Theme:    ThemeConfig{Default: "classic"},
	}
}

// Load resolves configuration. A .env file in the working directory is read
// first so env overrides work the same in development and deployment. An
// empty configFile skips the file layer entirely.
func Load(configFile string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault("server.host", cfg.Server.Host)
	v.SetDefault("server.port", cfg.Server.Port)
	v.SetDefault("database.path", cfg.Database.Path)
	v.SetDefault("assets.prefix", cfg.Assets.Prefix)
	v.SetDefault("theme.default", cfg.Theme.Default)
	v.SetDefault("theme.variant", cfg.Theme.Variant)

	v.SetEnvPrefix("RESETAPAD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) {
				return nil, fmt.Errorf("config: file %s not found", configFile)
			}
			return nil, fmt.Errorf("config: read %s: %w", configFile, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("config: invalid server port %d", cfg.Server.Port)
	}
	if cfg.Database.Path == "" {
		return nil, errors.New("config: database path required")
	}
	return cfg, nil
}
