package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	LogLevel string
	Env      string

	JWTSecret string
	TokenTTL  time.Duration

	OpenAIKey string

	SimulatorInterval time.Duration
	SimulatorEnabled  bool
}

func LoadConfig() (*Config, error) {
	// A missing .env is fine; real deployments set the environment
	// directly.
	_ = godotenv.Load()

	return &Config{
		Port:              GetEnv("PORT", "8081"),
		Env:               GetEnv("ENV", "development"),
		LogLevel:          GetEnv("LOG_LEVEL", "info"),
		JWTSecret:         GetEnv("JWT_SECRET", "dev-only-secret"),
		TokenTTL:          GetDuration("TOKEN_TTL", 24*time.Hour),
		OpenAIKey:         GetEnv("OPENAI_API_KEY", ""),
		SimulatorInterval: GetDuration("SIMULATOR_INTERVAL", 15*time.Second),
		SimulatorEnabled:  GetBool("SIMULATOR_ENABLED", true),
	}, nil
}

func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func GetDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func GetBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
