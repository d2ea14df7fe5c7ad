package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

type Config struct {
	AppEnv        string `env:"APP_ENV" default:"development"`
	Port          string `env:"PORT" default:"5000"`
	MongoURI      string `env:"MONGO_URI"`
	MongoDatabase string `env:"MONGO_DATABASE" default:"jobpulse"`
	JWTSecret     string `env:"JWT_SECRET"`
	AuthHeader    string `env:"AUTH_HEADER" default:"x-auth-token"`
	LogLevel      string `env:"LOG_LEVEL" default:"info"`
	LogFormat     string `env:"LOG_FORMAT" default:"text"`

	// Sessions are deliberately long-lived; clients hold one token per login.
	TokenTTL time.Duration `env:"TOKEN_TTL" default:"8760h"` // 365 days

	BcryptCost int `env:"BCRYPT_COST" default:"10"`

	LoginRatePerSecond float64 `env:"LOGIN_RATE_PER_SECOND" default:"5"`
	LoginRateBurst     int     `env:"LOGIN_RATE_BURST" default:"10"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	required := map[string]string{
		"MONGO_URI":  cfg.MongoURI,
		"JWT_SECRET": cfg.JWTSecret,
	}
	for name, value := range required {
		if value == "" {
			return fmt.Errorf("%s is required", name)
		}
	}

	if len(cfg.JWTSecret) < 16 {
		return fmt.Errorf("JWT_SECRET must be at least 16 characters, got %d", len(cfg.JWTSecret))
	}

	if cfg.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive, got %s", cfg.TokenTTL)
	}

	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return fmt.Errorf("BCRYPT_COST must be between 4 and 31, got %d", cfg.BcryptCost)
	}

	return nil
}
