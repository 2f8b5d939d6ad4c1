package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Storage driver names.
const (
	StorageDriverFile     = "file"
	StorageDriverRedis    = "redis"
	StorageDriverPostgres = "postgres"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App          AppConfig
	Logger       LoggerConfig
	Storage      StorageConfig
	Session      SessionConfig
	Tasks        TasksConfig
	Seed         SeedConfig
	Notification NotificationConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// StorageConfig selects and configures the snapshot backend.
type StorageConfig struct {
	Driver   string
	DataDir  string
	Redis    RedisConfig
	Postgres PostgresConfig
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// SessionConfig defines demo session token parameters.
type SessionConfig struct {
	Secret     string
	TTLMinutes int
}

// TasksConfig controls the boundary-check worker.
type TasksConfig struct {
	BoundaryCheckSeconds int
}

// SeedConfig controls fallback seed data generation.
type SeedConfig struct {
	TicketCount int
}

// NotificationConfig holds stub notification endpoints.
type NotificationConfig struct {
	WebhookURL string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "deskboard"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Storage: StorageConfig{
			Driver:  getEnv("STORAGE_DRIVER", StorageDriverFile),
			DataDir: getEnv("STORAGE_DATA_DIR", "data"),
			Redis: RedisConfig{
				Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
				Password: os.Getenv("REDIS_PASSWORD"),
				DB:       redisDB,
			},
			Postgres: PostgresConfig{
				DSN:            os.Getenv("POSTGRES_DSN"),
				MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
				MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
				ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
				ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
			},
		},
		Session: SessionConfig{
			Secret:     getEnv("SESSION_JWT_SECRET", "dev-secret"),
			TTLMinutes: getEnvAsInt("SESSION_TTL_MINUTES", 480),
		},
		Tasks: TasksConfig{
			BoundaryCheckSeconds: getEnvAsInt("TASK_BOUNDARY_CHECK_SECONDS", 30),
		},
		Seed: SeedConfig{
			TicketCount: getEnvAsInt("SEED_TICKET_COUNT", 50),
		},
		Notification: NotificationConfig{
			WebhookURL: getEnv("NOTIFY_WEBHOOK_URL", ""),
		},
	}

	switch cfg.Storage.Driver {
	case StorageDriverFile, StorageDriverRedis, StorageDriverPostgres:
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.Storage.Driver)
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// BoundaryCheckInterval returns the worker tick interval.
func (t TasksConfig) BoundaryCheckInterval() time.Duration {
	if t.BoundaryCheckSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(t.BoundaryCheckSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
