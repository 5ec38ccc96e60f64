// Package config loads runtime settings for the API from the environment,
// optionally seeded from a .env file.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendMemory = "memory"
	BackendMongo  = "mongo"
)

// Config holds runtime settings for the API server.
type Config struct {
	Port          string
	JWTSecret     string
	SessionTTL    time.Duration
	CookieSecure  bool
	CORSOrigins   []string
	LogLevel      string
	StoreBackend  string
	MongoURI      string
	MongoDatabase string

	AdminEmail    string
	AdminPassword string

	ResendAPIKey   string
	FromEmail      string
	StaffEmail     string
	TextbeltAPIKey string
}

// LoadDefaults populates Config with development defaults.
// NOTE: JWTSecret and AdminPassword must be overridden in production.
func (c *Config) LoadDefaults() {
	c.Port = "8080"
	c.JWTSecret = "dev-secret"
	c.SessionTTL = 24 * time.Hour
	c.CookieSecure = false
	c.CORSOrigins = []string{"http://localhost:5173"}
	c.LogLevel = "info"
	c.StoreBackend = BackendMemory
	c.MongoDatabase = "beastfit"
	c.AdminEmail = "admin@beastfitarena.com"
	c.AdminPassword = "admin123"
}

// LoadConfig applies defaults, then the .env file (if any), then the
// process environment.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}
	cfg := &Config{}
	cfg.LoadDefaults()
	cfg.applyEnv(os.LookupEnv)
	return cfg
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	str("API_PORT", &c.Port)
	str("JWT_SECRET", &c.JWTSecret)
	str("LOG_LEVEL", &c.LogLevel)
	str("STORE_BACKEND", &c.StoreBackend)
	str("MONGO_URI", &c.MongoURI)
	str("MONGO_DATABASE", &c.MongoDatabase)
	str("ADMIN_EMAIL", &c.AdminEmail)
	str("ADMIN_PASSWORD", &c.AdminPassword)
	str("RESEND_API_KEY", &c.ResendAPIKey)
	str("FROM_EMAIL", &c.FromEmail)
	str("STAFF_EMAIL", &c.StaffEmail)
	str("TEXTBELT_API_KEY", &c.TextbeltAPIKey)

	if v, ok := lookup("SESSION_TTL"); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.SessionTTL = d
		} else {
			log.Printf("Ignoring invalid SESSION_TTL %q: %v", v, err)
		}
	}
	if v, ok := lookup("COOKIE_SECURE"); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.CookieSecure = b
		}
	}
	if v, ok := lookup("CORS_ORIGINS"); ok && v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) > 0 {
			c.CORSOrigins = origins
		}
	}
}
