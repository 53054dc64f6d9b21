package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config holds environment-based settings
type Config struct {
	ServerAddress  string
	SecretKey      string
	DatabaseURL    string
	MigrationsPath string
	TemplatesGlob  string

	RedisAddress  string
	RedisUsername string
	RedisPassword string

	GeoAPIURL       string
	PrayerAPIURL    string
	PrayerMethod    int
	UpstreamTimeout time.Duration

	BcryptCost int
	SessionTTL time.Duration
}

// Load reads configuration from environment variables, after a
// best-effort .env load.
func Load() (*Config, error) {
	_ = godotenv.Load()

	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		return nil, fmt.Errorf("SECRET_KEY is required")
	}
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	cfg := &Config{
		ServerAddress:  getenvDefault("SERVER_ADDRESS", ":8080"),
		SecretKey:      secret,
		DatabaseURL:    dbURL,
		MigrationsPath: getenvDefault("MIGRATIONS_PATH", "./migrations"),
		TemplatesGlob:  getenvDefault("TEMPLATES_GLOB", "templates/*.html"),

		RedisAddress:  os.Getenv("REDIS_ADDRESS"),
		RedisUsername: os.Getenv("REDIS_USERNAME"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		GeoAPIURL:    getenvDefault("GEO_API_URL", "http://ip-api.com/json/"),
		PrayerAPIURL: getenvDefault("PRAYER_API_URL", "http://api.aladhan.com"),
	}

	var err error
	if cfg.PrayerMethod, err = getenvInt("PRAYER_METHOD", 2); err != nil {
		return nil, err
	}
	if cfg.BcryptCost, err = getenvInt("BCRYPT_COST", bcrypt.DefaultCost); err != nil {
		return nil, err
	}
	if cfg.UpstreamTimeout, err = getenvDuration("UPSTREAM_TIMEOUT", 5*time.Second); err != nil {
		return nil, err
	}
	if cfg.SessionTTL, err = getenvDuration("SESSION_TTL", 72*time.Hour); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration like 5s: %w", key, err)
	}
	return d, nil
}
