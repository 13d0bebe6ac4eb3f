// Package config loads service configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds everything the process needs at startup.
type Config struct {
	Port      string `mapstructure:"PORT"`
	StaticDir string `mapstructure:"STATIC_DIR"`
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`
}

// Load reads .env if present, then lets real environment variables override.
func Load() (*Config, error) {
	// Missing .env is fine; env vars alone are a complete configuration.
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("STATIC_DIR", "./web/static")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.AutomaticEnv()

	// AutomaticEnv alone does not feed Unmarshal; bind each key explicitly.
	for _, key := range []string{"PORT", "STATIC_DIR", "LOG_LEVEL", "LOG_FORMAT"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
