package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Weights   WeightsConfig
	Recommend RecommendConfig
	RateLimit RateLimitConfig
	Catalog   CatalogConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// WeightsConfig holds the hybrid score blend. The weights must sum to 1.0
// so hybrid scores stay bounded in [0,1].
type WeightsConfig struct {
	Application float64 `mapstructure:"application"`
	Power       float64 `mapstructure:"power"`
	Description float64 `mapstructure:"description"`
}

// RecommendConfig holds recommendation defaults
type RecommendConfig struct {
	DefaultCount int    `mapstructure:"default_count"`
	Strategy     string `mapstructure:"strategy"` // "filter" or "hybrid"
}

// RateLimitConfig holds per-client rate limiting configuration
type RateLimitConfig struct {
	PerIP float64 `mapstructure:"per_ip"` // requests per second
	Burst int     `mapstructure:"burst"`
}

// CatalogConfig holds catalog preloading configuration
type CatalogConfig struct {
	CSVPath string `mapstructure:"csv_path"` // optional CSV preload at startup
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/recommender/")

	// Environment variable settings: RECOMMENDER_SERVER_PORT overrides
	// server.port, and so on
	v.SetEnvPrefix("RECOMMENDER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Hybrid score weights
	v.SetDefault("weights.application", 0.40)
	v.SetDefault("weights.power", 0.40)
	v.SetDefault("weights.description", 0.20)

	// Recommendation defaults
	v.SetDefault("recommend.default_count", 10)
	v.SetDefault("recommend.strategy", "filter")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 10.0)
	v.SetDefault("ratelimit.burst", 20)

	// Catalog defaults: no preload unless a path is configured
	v.SetDefault("catalog.csv_path", "")
}

// validate validates the configuration
func validate(config *Config) error {
	sum := config.Weights.Application + config.Weights.Power + config.Weights.Description
	if math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("score weights must sum to 1.0, got %.4f", sum)
	}
	if config.Weights.Application < 0 || config.Weights.Power < 0 || config.Weights.Description < 0 {
		return fmt.Errorf("score weights must be non-negative")
	}

	if config.Recommend.DefaultCount <= 0 {
		return fmt.Errorf("recommend.default_count must be positive, got %d", config.Recommend.DefaultCount)
	}
	if s := config.Recommend.Strategy; s != "filter" && s != "hybrid" {
		return fmt.Errorf("recommend.strategy must be 'filter' or 'hybrid', got: %s", s)
	}

	if config.RateLimit.PerIP <= 0 {
		return fmt.Errorf("ratelimit.per_ip must be positive, got %v", config.RateLimit.PerIP)
	}

	return nil
}
