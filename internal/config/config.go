package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort string
	AppBaseURL string
	SecretKey  string

	DatabaseType string
	DatabasePath string
	DatabaseURL  string

	SessionDuration    time.Duration
	ResetTokenLifetime time.Duration
	ResetCooldown      time.Duration

	StaticFilesPath string
	TemplatesPath   string
	MigrationsPath  string
	TrainersJSON    string
	GeoLogPath      string

	AWSRegion    string
	SESFromEmail string
	SESFromName  string

	GoogleClientID     string
	GoogleClientSecret string

	AdminEmail    string
	AdminPassword string
}

// Load reads configuration from a .env file (if present) and environment variables.
// Secrets carry no literal defaults: a missing SECRET_KEY is a startup error, a
// missing SES or OAuth credential disables the corresponding feature.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		ServerPort: getEnv("PORT", "8080"),
		AppBaseURL: getEnv("APP_BASE_URL", "http://localhost:8080"),
		SecretKey:  os.Getenv("SECRET_KEY"),

		DatabaseType: getEnv("DB_TYPE", "sqlite"),
		DatabasePath: getEnv("DB_PATH", "./elevix.db"),
		DatabaseURL:  os.Getenv("DB_URL"),

		SessionDuration:    24 * time.Hour,
		ResetTokenLifetime: 1 * time.Hour,
		ResetCooldown:      60 * time.Second,

		StaticFilesPath: getEnv("STATIC_PATH", "./static"),
		TemplatesPath:   getEnv("TEMPLATES_PATH", "./internal/templates"),
		MigrationsPath:  getEnv("MIGRATIONS_PATH", "./migrations"),
		TrainersJSON:    getEnv("TRAINERS_JSON", "./static/json/trainers.json"),
		GeoLogPath:      getEnv("GEO_LOG_PATH", "./geo_data_logs.json"),

		AWSRegion:    getEnv("AWS_REGION", "eu-central-1"),
		SESFromEmail: os.Getenv("SES_FROM_EMAIL"),
		SESFromName:  getEnv("SES_FROM_NAME", "Elevix"),

		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),

		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("SECRET_KEY must be set")
	}

	return cfg, nil
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
