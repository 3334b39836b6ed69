// Package config loads runtime settings from the environment and optional
// .env files.
package config

import (
	"fmt"

	"bookstore/internal/platform/validate"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "BOOKSTORE"

type Config struct {
	LogLevel        string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	LogFormat       string `mapstructure:"log_format" validate:"required,oneof=console json"`
	SearchCacheSize int    `mapstructure:"search_cache_size" validate:"gte=0"`
	SeedFile        string `mapstructure:"seed_file"`
}

func loadEnvFiles() {
	// Do not override environment provided by the runtime.
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// Load reads BOOKSTORE_* variables over the defaults and validates the result.
func Load() (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("search_cache_size", 128)
	v.SetDefault("seed_file", "")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validate.Join(validate.Struct(cfg)); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
