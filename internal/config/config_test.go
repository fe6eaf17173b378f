package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "MONGO_URI", "MONGO_DB", "MONGO_TIMEOUT_SECONDS", "DATA_DIR", "PASSWORD_HASHER", "SEED_PRODUCTS"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "8001", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "elanicia_db", cfg.MongoDatabase)
	assert.Equal(t, 5*time.Second, cfg.MongoTimeout)
	assert.Equal(t, ".", cfg.DataDir)
	assert.Equal(t, "bcrypt", cfg.PasswordHasher)
	assert.True(t, cfg.SeedProducts)
	assert.Equal(t, ":8001", cfg.HTTPAddress())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("MONGO_DB", "shop")
	t.Setenv("MONGO_TIMEOUT_SECONDS", "2")
	t.Setenv("DATA_DIR", "/var/data")
	t.Setenv("PASSWORD_HASHER", "legacy")
	t.Setenv("SEED_PRODUCTS", "false")

	cfg := Load()
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.Equal(t, "shop", cfg.MongoDatabase)
	assert.Equal(t, 2*time.Second, cfg.MongoTimeout)
	assert.Equal(t, "/var/data", cfg.DataDir)
	assert.Equal(t, "legacy", cfg.PasswordHasher)
	assert.False(t, cfg.SeedProducts)
}

func TestLoadBadTimeoutFallsBack(t *testing.T) {
	t.Setenv("MONGO_TIMEOUT_SECONDS", "not-a-number")
	assert.Equal(t, 5*time.Second, Load().MongoTimeout)

	t.Setenv("MONGO_TIMEOUT_SECONDS", "-3")
	assert.Equal(t, 5*time.Second, Load().MongoTimeout)
}
