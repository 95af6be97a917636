package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort     string
	DatabaseURL string // optional: archive + status checks disabled when empty
	RedisURL    string // optional: in-memory game store when empty

	CORSOrigins []string
	GameTTL     time.Duration // abandoned games are dropped after this
}

// Load reads configuration from the environment, with a .env file as fallback.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort: "8000",
		GameTTL: time.Hour,
	}

	if v := strings.TrimSpace(os.Getenv("APP_PORT")); v != "" {
		cfg.AppPort = v
	}
	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	cfg.RedisURL = strings.TrimSpace(os.Getenv("REDIS_URL"))

	origins := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if origins == "" {
		origins = "*"
	}
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	if v := strings.TrimSpace(os.Getenv("GAME_TTL")); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.GameTTL = d
		}
	}

	return cfg
}
