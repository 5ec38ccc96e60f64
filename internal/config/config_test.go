package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func envFrom(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "8080", c.Port)
	assert.Equal(t, 24*time.Hour, c.SessionTTL)
	assert.Equal(t, BackendMemory, c.StoreBackend)
	assert.Equal(t, "admin@beastfitarena.com", c.AdminEmail)
	assert.Equal(t, []string{"http://localhost:5173"}, c.CORSOrigins)
	assert.False(t, c.CookieSecure)
}

func TestApplyEnv_OverridesDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()
	c.applyEnv(envFrom(map[string]string{
		"API_PORT":       "9000",
		"JWT_SECRET":     "s3cret",
		"SESSION_TTL":    "2h",
		"COOKIE_SECURE":  "true",
		"CORS_ORIGINS":   "https://a.example, https://b.example ,",
		"STORE_BACKEND":  BackendMongo,
		"MONGO_URI":      "mongodb://localhost:27017",
		"ADMIN_PASSWORD": "changeme",
	}))

	assert.Equal(t, "9000", c.Port)
	assert.Equal(t, "s3cret", c.JWTSecret)
	assert.Equal(t, 2*time.Hour, c.SessionTTL)
	assert.True(t, c.CookieSecure)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, c.CORSOrigins)
	assert.Equal(t, BackendMongo, c.StoreBackend)
	assert.Equal(t, "mongodb://localhost:27017", c.MongoURI)
	assert.Equal(t, "changeme", c.AdminPassword)
	assert.Equal(t, "beastfit", c.MongoDatabase)
}

func TestApplyEnv_InvalidValuesKeepDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()
	c.applyEnv(envFrom(map[string]string{
		"SESSION_TTL":   "forever",
		"COOKIE_SECURE": "maybe",
		"API_PORT":      "",
	}))

	assert.Equal(t, 24*time.Hour, c.SessionTTL)
	assert.False(t, c.CookieSecure)
	assert.Equal(t, "8080", c.Port)
}
