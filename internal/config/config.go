package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL   string
	Port          string
	AppEnv        string
	CORSOrigins   []string
	MigrationsDir string
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Load reads configuration from the environment, with a .env file as
// fallback for local development.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		DatabaseURL:   envRequired("DATABASE_URL"),
		Port:          envString("PORT", "8080"),
		AppEnv:        envString("APP_ENV", "development"),
		MigrationsDir: envString("MIGRATIONS_DIR", "migrations"),
	}
	if origins := os.Getenv("CORS_ORIGIN"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}
	return cfg
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envRequired(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("%s is required", key)
	}
	return v
}
