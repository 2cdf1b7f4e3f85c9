// internal/infrastructure/config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// PostgreSQL (baselines + watchlist)
	PostgresURI string

	// MongoDB (price history)
	MongoURI string
	MongoDB  string

	// WhatsApp gateway
	WhatsAppEndpoint string
	WhatsAppToken    string

	// Hunt watcher
	WatchSchedule string

	// Heartbeat (keep-alive ping for the hosting platform)
	HeartbeatURL      string
	HeartbeatInterval time.Duration

	// Baseline seeding
	DatasetPath string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	// Set defaults and override with env vars
	config := &Config{
		AppVersion:   getEnv("APP_VERSION", "1.0.0"),
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		PostgresURI: getEnv("POSTGRES_DSN", "postgres://localhost:5432/skyhunt?sslmode=disable"),

		MongoURI: getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "skyhunt"),

		WhatsAppEndpoint: getEnv("WHATSAPP_ENDPOINT", ""),
		WhatsAppToken:    getEnv("WHATSAPP_TOKEN", ""),

		WatchSchedule: getEnv("WATCH_SCHEDULE", "@every 30m"),

		HeartbeatURL:      getEnv("HEARTBEAT_URL", ""),
		HeartbeatInterval: time.Duration(getEnvAsInt("HEARTBEAT_INTERVAL", 600)) * time.Second,

		DatasetPath: getEnv("DATASET_PATH", "Clean_Dataset.csv"),
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
