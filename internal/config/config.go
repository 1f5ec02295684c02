// Package config loads process settings from the environment.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the server settings
type Config struct {
	Port        string
	DBPath      string
	CatalogDir  string
	StaticDir   string
	CORSOrigins []string
}

// Load reads an optional .env file, then the environment, falling back to
// defaults
func Load() *Config {
	// .env is optional
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DBPath:      getEnv("DB_PATH", "./relicforge.db"),
		CatalogDir:  getEnv("CATALOG_DIR", "./data"),
		StaticDir:   getEnv("STATIC_DIR", "../frontend/dist"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:*")),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
