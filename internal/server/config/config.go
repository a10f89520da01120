// Package config loads the record store server's settings from the
// environment, with an optional .env file for development.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseDSN string
	Port        string
}

func LoadConfig() *Config {
	// a missing .env is fine in production
	_ = godotenv.Load()

	dsn := getEnv("DATABASE_URL", "")
	if dsn == "" {
		dsn = "postgres://" + getEnv("POSTGRES_USER", "postgres") + ":" +
			getEnv("POSTGRES_PASSWORD", "postgres") + "@" +
			getEnv("POSTGRES_HOST", "localhost") + ":" +
			getEnv("POSTGRES_PORT", "5432") + "/" +
			getEnv("POSTGRES_DB", "teamspace") + "?sslmode=disable"
	}

	return &Config{
		DatabaseDSN: dsn,
		Port:        getEnv("PORT", "8080"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}
