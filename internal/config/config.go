package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port             string
	GinMode          string
	DatabaseURL      string
	EnableDB         bool
	CatalogPath      string
	ProbabilityFloor int
	CacheTTL         time.Duration
	LogLevel         string
	MaxBodyBytes     int64
}

// Load reads configuration from the environment, after loading a .env file
// from the working directory if one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("ENABLE_DB", false)
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("CATALOG_PATH", "")
	v.SetDefault("PROBABILITY_FLOOR", 25)
	v.SetDefault("CACHE_TTL", "10m")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_BODY_BYTES", 1<<20)

	cfg := &Config{
		Port:             v.GetString("PORT"),
		GinMode:          v.GetString("GIN_MODE"),
		DatabaseURL:      v.GetString("DATABASE_URL"),
		EnableDB:         v.GetBool("ENABLE_DB"),
		CatalogPath:      v.GetString("CATALOG_PATH"),
		ProbabilityFloor: v.GetInt("PROBABILITY_FLOOR"),
		CacheTTL:         v.GetDuration("CACHE_TTL"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		MaxBodyBytes:     v.GetInt64("MAX_BODY_BYTES"),
	}

	if cfg.EnableDB && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required when ENABLE_DB=true")
	}
	if cfg.ProbabilityFloor < 0 || cfg.ProbabilityFloor > 95 {
		return nil, fmt.Errorf("PROBABILITY_FLOOR must be between 0 and 95, got %d", cfg.ProbabilityFloor)
	}
	if cfg.CacheTTL <= 0 {
		return nil, fmt.Errorf("CACHE_TTL must be positive, got %s", cfg.CacheTTL)
	}
	if cfg.MaxBodyBytes <= 0 {
		return nil, fmt.Errorf("MAX_BODY_BYTES must be positive, got %d", cfg.MaxBodyBytes)
	}

	return cfg, nil
}
