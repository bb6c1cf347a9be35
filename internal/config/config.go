package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

type Config struct {
	Port string
	URL  string

	// StoreBackend choisit l'adaptateur de persistance : file ou postgres
	StoreBackend string
	StoreFile    string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
}

// LoadConfig charge .env s'il existe puis lit l'environnement
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		URL:          getEnv("APP_URL", "http://localhost:8080"),
		StoreBackend: getEnv("STORE_BACKEND", BackendFile),
		StoreFile:    getEnv("STORE_FILE", "fitness-challenge-store.json"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBUser:       os.Getenv("DB_USER"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		DBName:       os.Getenv("DB_NAME"),
	}

	switch cfg.StoreBackend {
	case BackendFile:
	case BackendPostgres:
		if cfg.DBUser == "" || cfg.DBName == "" {
			return nil, fmt.Errorf("postgres backend requires DB_USER and DB_NAME")
		}
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
