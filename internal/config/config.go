package config

import (
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
)

type DatabaseConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

// Enabled reports whether Postgres persistence is configured.
func (d DatabaseConfig) Enabled() bool {
	return d.Host != ""
}

type Config struct {
	AppEnv           string
	Port             string
	JWTSecret        string
	JWTTTL           time.Duration
	DB               DatabaseConfig
	SnapshotInterval time.Duration
	RedisAddr        string
	KafkaBroker      string
	KafkaGroupID     string
	SeedDemoData     bool
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func Load() Config {
	return Config{
		AppEnv:    GetEnv("APP_ENV", "development"),
		Port:      GetEnv("PORT", "8080"),
		JWTSecret: GetEnv("JWT_SECRET", "dev-secret-change-me"),
		JWTTTL:    GetEnvAsDuration("JWT_TTL", 24*time.Hour),
		DB: DatabaseConfig{
			Host:     GetEnv("DB_HOST", ""),
			User:     GetEnv("DB_USER", "postgres"),
			Password: GetEnv("DB_PASSWORD", ""),
			Name:     GetEnv("DB_NAME", "dinas"),
			Port:     GetEnv("DB_PORT", "5432"),
			SSLMode:  GetEnv("DB_SSLMODE", "disable"),
		},
		SnapshotInterval: GetEnvAsDuration("SNAPSHOT_INTERVAL", 30*time.Second),
		RedisAddr:        GetEnv("REDIS_ADDR", ""),
		KafkaBroker:      GetEnv("KAFKA_BROKER", ""),
		KafkaGroupID:     GetEnv("KAFKA_GROUP_ID", "dinas-trip-audit"),
		SeedDemoData:     GetEnvAsBool("SEED_DEMO_DATA", true),
	}
}

// GetEnv mengambil environment variable dengan nilai default
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func GetEnvAsInt(key string, fallback int) int {
	if value, err := strconv.Atoi(GetEnv(key, "")); err == nil {
		return value
	}
	return fallback
}

func GetEnvAsBool(key string, fallback bool) bool {
	if value, err := strconv.ParseBool(GetEnv(key, "")); err == nil {
		return value
	}
	return fallback
}

// GetEnvAsDuration menerima format time.ParseDuration ("30s", "5m").
func GetEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if value, err := time.ParseDuration(GetEnv(key, "")); err == nil && value > 0 {
		return value
	}
	return fallback
}

// NewLogger builds the process logger: production encoding when APP_ENV=production.
func NewLogger(cfg Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
