package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration sourced from env vars. Nothing is
// required: an unreachable or unset Mongo endpoint just means the process
// runs on file storage.
type Config struct {
	Port           string
	MongoURI       string
	MongoDatabase  string
	MongoTimeout   time.Duration
	DataDir        string
	PasswordHasher string
	SeedProducts   bool
}

// Load reads configuration from the environment and applies defaults.
func Load() Config {
	cfg := Config{
		Port:           fallback(os.Getenv("PORT"), "8001"),
		MongoURI:       fallback(os.Getenv("MONGO_URI"), "mongodb://localhost:27017"),
		MongoDatabase:  fallback(os.Getenv("MONGO_DB"), "elanicia_db"),
		DataDir:        fallback(os.Getenv("DATA_DIR"), "."),
		PasswordHasher: fallback(os.Getenv("PASSWORD_HASHER"), "bcrypt"),
	}

	seconds := fallback(os.Getenv("MONGO_TIMEOUT_SECONDS"), "5")
	if n, err := strconv.Atoi(seconds); err == nil && n > 0 {
		cfg.MongoTimeout = time.Duration(n) * time.Second
	} else {
		cfg.MongoTimeout = 5 * time.Second
	}

	cfg.SeedProducts = !strings.EqualFold(fallback(os.Getenv("SEED_PRODUCTS"), "true"), "false")

	return cfg
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}
