package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Session SessionConfig
	App     AppConfig
}

type ServerConfig struct {
	Port string
	// DSN of an optional Postgres the health endpoint pings. Empty disables it.
	DatabaseDSN string
}

type SessionConfig struct {
	// RedisAddr points the session store at an external Redis. When empty the
	// service starts an embedded one, so the mock needs no infrastructure.
	RedisAddr string
	TokenTTL  time.Duration
	// LoginRatePerSec and LoginBurst bound the login endpoint.
	LoginRatePerSec float64
	LoginBurst      int
}

type AppConfig struct {
	Environment string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8000"),
			DatabaseDSN: getEnv("DB_DSN", ""),
		},
		Session: SessionConfig{
			RedisAddr:       getEnv("REDIS_ADDR", ""),
			TokenTTL:        time.Duration(getEnvAsInt("TOKEN_TTL_MINUTES", 60)) * time.Minute,
			LoginRatePerSec: float64(getEnvAsInt("LOGIN_RATE_PER_SEC", 5)),
			LoginBurst:      getEnvAsInt("LOGIN_BURST", 10),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Session.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL_MINUTES must be positive")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}
