package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers accepted by StorageDriver.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName         string
	AppEnv          string
	AppPort         string
	LogLevel        string
	StorageDriver   string
	DatabaseURL     string
	SQLitePath      string
	SeedCourses     bool
	RedisURL        string
	NATSURL         string
	EventsChannel   string
	RateLimitMax    int
	RateLimitWindow time.Duration
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// IsDevelopment reports whether internal error details may be exposed to clients.
func (c Config) IsDevelopment() bool {
	return strings.EqualFold(c.AppEnv, "development")
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("SPT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "Student Progress API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "5000")
	v.SetDefault("log.level", "info")
	v.SetDefault("storage.driver", StorageMemory)
	v.SetDefault("sqlite.path", "student_progress.db")
	v.SetDefault("seed.courses", true)
	v.SetDefault("events.channel", "student-progress")
	v.SetDefault("rate_limit.max", 60)
	v.SetDefault("rate_limit.window", "1m")

	window, err := time.ParseDuration(v.GetString("rate_limit.window"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid rate limit window: %w", err)
	}

	cfg := Config{
		AppName:         v.GetString("app.name"),
		AppEnv:          v.GetString("app.env"),
		AppPort:         v.GetString("app.port"),
		LogLevel:        strings.ToLower(v.GetString("log.level")),
		StorageDriver:   strings.ToLower(strings.TrimSpace(v.GetString("storage.driver"))),
		DatabaseURL:     v.GetString("database.url"),
		SQLitePath:      v.GetString("sqlite.path"),
		SeedCourses:     v.GetBool("seed.courses"),
		RedisURL:        v.GetString("redis.url"),
		NATSURL:         v.GetString("nats.url"),
		EventsChannel:   v.GetString("events.channel"),
		RateLimitMax:    v.GetInt("rate_limit.max"),
		RateLimitWindow: window,
	}

	switch cfg.StorageDriver {
	case StorageMemory, StorageSQLite:
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("database url must be provided for the postgres storage driver")
		}
	default:
		return Config{}, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}

	if cfg.RateLimitMax <= 0 {
		cfg.RateLimitMax = 60
	}

	if cfg.RateLimitWindow <= 0 {
		cfg.RateLimitWindow = time.Minute
	}

	return cfg, nil
}
