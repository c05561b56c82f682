package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/Ananya-Nair20/T-Care/internal/domain/matching"
)

type Config struct {
	Port           string   `mapstructure:"PORT"`
	Env            string   `mapstructure:"ENV"`
	DatabaseURL    string   `mapstructure:"DATABASE_URL"`
	DBMaxConns     int32    `mapstructure:"DB_MAX_CONNS"`
	DBMinConns     int32    `mapstructure:"DB_MIN_CONNS"`
	CORSOrigins    []string `mapstructure:"CORS_ORIGINS"`
	RateLimitRPS   float64  `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int      `mapstructure:"RATE_LIMIT_BURST"`

	// Matching parameters
	MaxDistanceKm       float64 `mapstructure:"MAX_DISTANCE_KM"`
	CompatibilityWeight float64 `mapstructure:"COMPATIBILITY_WEIGHT"`
	DistanceWeight      float64 `mapstructure:"DISTANCE_WEIGHT"`
	AvailabilityWeight  float64 `mapstructure:"AVAILABILITY_WEIGHT"`
	EngagementWeight    float64 `mapstructure:"ENGAGEMENT_WEIGHT"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT_RPS", 100)
	v.SetDefault("RATE_LIMIT_BURST", 200)
	v.SetDefault("MAX_DISTANCE_KM", 50.0)
	v.SetDefault("COMPATIBILITY_WEIGHT", 0.4)
	v.SetDefault("DISTANCE_WEIGHT", 0.3)
	v.SetDefault("AVAILABILITY_WEIGHT", 0.2)
	v.SetDefault("ENGAGEMENT_WEIGHT", 0.1)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("RATE_LIMIT_RPS")
	v.BindEnv("RATE_LIMIT_BURST")
	v.BindEnv("MAX_DISTANCE_KM")
	v.BindEnv("COMPATIBILITY_WEIGHT")
	v.BindEnv("DISTANCE_WEIGHT")
	v.BindEnv("AVAILABILITY_WEIGHT")
	v.BindEnv("ENGAGEMENT_WEIGHT")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// ScoringWeights assembles the matching weight configuration.
func (c *Config) ScoringWeights() matching.Weights {
	return matching.Weights{
		Compatibility: c.CompatibilityWeight,
		Distance:      c.DistanceWeight,
		Availability:  c.AvailabilityWeight,
		Engagement:    c.EngagementWeight,
	}
}

// Validate checks that the configuration is safe to run: the scoring weights
// must be non-negative and sum to 1.0, and the distance ceiling must be
// positive. Bad config is rejected before the server starts, never partially
// applied.
func (c *Config) Validate() error {
	if err := c.ScoringWeights().Validate(); err != nil {
		return err
	}
	if c.MaxDistanceKm <= 0 {
		return fmt.Errorf("MAX_DISTANCE_KM must be positive, got %g", c.MaxDistanceKm)
	}
	return nil
}
