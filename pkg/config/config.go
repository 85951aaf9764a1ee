package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string
	MetricsPort string
	AssetsDir   string
	SeedFile    string
	LogLevel    string
}

// Load reads configuration from the environment, after loading an optional .env file
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		MetricsPort: getEnv("METRICS_PORT", "9090"),
		AssetsDir:   getEnv("ASSETS_DIR", "public"),
		SeedFile:    getEnv("SEED_FILE", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
