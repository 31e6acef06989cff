package main

import (
	"os"

	"github.com/joho/godotenv"
)

// config holds all configuration for the service.
type config struct {
	Environment string
	Addr        string
	FoodsCSV    string
}

// loadConfig loads configuration from a .env file (if present) and the
// environment, with defaults that make the zero-config local run work.
func loadConfig() config {
	_ = godotenv.Load()

	return config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Addr:        getEnv("ADDR", "localhost:3000"),
		FoodsCSV:    getEnv("FOODS_CSV", "foods_korean.csv"),
	}
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
