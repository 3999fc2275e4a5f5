package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds process-level settings resolved from the environment.
type Config struct {
	Port        string
	Environment string
	APIToken    string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	// SQLitePath is used when no Postgres host is configured, which keeps
	// local development and CI free of external services.
	SQLitePath string
}

// Load reads .env (if present) and resolves the process configuration.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	return Config{
		Port:        getenv("PORT", "3001"),
		Environment: getenv("APP_ENV", "development"),
		APIToken:    os.Getenv("API_TOKEN"),
		DBHost:      os.Getenv("DB_HOST"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      os.Getenv("DB_NAME"),
		DBPort:      getenv("DB_PORT", "5432"),
		SQLitePath:  getenv("SQLITE_PATH", "admin-service.db"),
	}
}

// IsProduction reports whether error detail must be hidden from responses.
func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
