// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Storage     StorageConfig
	Sessions    SessionConfig
	Database    DatabaseConfig
	Faults      FaultConfig
	Insights    InsightsConfig
	Export      ExportConfig
	AWS         AWSConfig
	RateLimit   RateLimitConfig
	Logging     LoggingConfig
	I18n        I18nConfig
	Frontend    FrontendConfig
}

type FrontendConfig struct {
	AllowedOrigins []string
}

type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

// StorageConfig selects where the product catalogue and the insight
// credential survive restarts: "file", "postgres" or "memory".
type StorageConfig struct {
	Driver   string
	FilePath string
}

// SessionConfig bounds the in-memory dashboard sessions. Zero disables a
// bound.
type SessionConfig struct {
	MaxSessions   int
	IdleTTL       time.Duration
	SweepInterval time.Duration
}

type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Database     string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  int
	LogLevel     string
}

type FaultConfig struct {
	ProfilePath string
	LatencyMin  time.Duration
	LatencyMax  time.Duration
	FailureRate float64
	NotFound    float64
	Seed        int64
}

type InsightsConfig struct {
	Provider string // "demo" or "remote"
	Endpoint string
	Timeout  int // in seconds
	Seed     int64
}

type ExportConfig struct {
	Directory string
	LegacyCSV bool
}

type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	S3Bucket        string
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

type LoggingConfig struct {
	Level  string
	Format string
}

type I18nConfig struct {
	DefaultLocale string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Storage: StorageConfig{
			Driver:   getEnv("STORAGE_DRIVER", "file"),
			FilePath: getEnv("STORAGE_FILE", "./data/store.json"),
		},
		Sessions: SessionConfig{
			MaxSessions:   getEnvAsInt("SESSION_MAX", 1000),
			IdleTTL:       getEnvAsDuration("SESSION_IDLE_TTL", 30*time.Minute),
			SweepInterval: getEnvAsDuration("SESSION_SWEEP_INTERVAL", time.Minute),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", ""),
			Database:     getEnv("DB_NAME", "scm_dashboard"),
			SSLMode:      getEnv("DB_SSL_MODE", "disable"),
			MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			MaxLifetime:  getEnvAsInt("DB_MAX_LIFETIME", 300),
			LogLevel:     getEnv("DB_LOG_LEVEL", "silent"),
		},
		Faults: FaultConfig{
			ProfilePath: getEnv("FAULT_PROFILE", ""),
			LatencyMin:  getEnvAsDuration("FAULT_LATENCY_MIN", 500*time.Millisecond),
			LatencyMax:  getEnvAsDuration("FAULT_LATENCY_MAX", 500*time.Millisecond),
			FailureRate: getEnvAsFloat("FAULT_FAILURE_RATE", 0),
			NotFound:    getEnvAsFloat("FAULT_NOT_FOUND_RATE", 0),
			Seed:        int64(getEnvAsInt("FAULT_SEED", 0)),
		},
		Insights: InsightsConfig{
			Provider: getEnv("INSIGHTS_PROVIDER", "demo"),
			Endpoint: getEnv("INSIGHTS_ENDPOINT", "https://api.example.com/supply-chain-ai"),
			Timeout:  getEnvAsInt("INSIGHTS_TIMEOUT", 10),
			Seed:     int64(getEnvAsInt("INSIGHTS_SEED", 0)),
		},
		Export: ExportConfig{
			Directory: getEnv("EXPORT_DIR", ""),
			LegacyCSV: getEnvAsBool("EXPORT_LEGACY_CSV", false),
		},
		AWS: AWSConfig{
			Region:          getEnv("AWS_REGION", "us-east-1"),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			S3Bucket:        getEnv("AWS_S3_BUCKET", ""),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: getEnvAsFloat("RATE_LIMIT_RPS", 20),
			Burst:             getEnvAsInt("RATE_LIMIT_BURST", 40),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
		I18n: I18nConfig{
			DefaultLocale: getEnv("DEFAULT_LOCALE", "en"),
		},
		Frontend: FrontendConfig{
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173", "http://localhost:8080"}),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case "file", "postgres", "memory":
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	switch c.Insights.Provider {
	case "demo", "remote":
	default:
		return fmt.Errorf("unknown insights provider %q", c.Insights.Provider)
	}

	if c.Sessions.MaxSessions < 0 || c.Sessions.IdleTTL < 0 || c.Sessions.SweepInterval < 0 {
		return fmt.Errorf("session limits must not be negative")
	}

	if c.Faults.LatencyMax < c.Faults.LatencyMin {
		return fmt.Errorf("fault latency max %s is below min %s", c.Faults.LatencyMax, c.Faults.LatencyMin)
	}

	if c.Faults.FailureRate < 0 || c.Faults.FailureRate > 1 || c.Faults.NotFound < 0 || c.Faults.NotFound > 1 {
		return fmt.Errorf("fault rates must be within [0,1]")
	}

	if c.Storage.Driver == "postgres" && c.Database.Password == "" && c.Environment == "production" {
		return fmt.Errorf("database password is required in production")
	}

	return nil
}

func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Database, d.SSLMode,
	)
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(strings.ToLower(value)); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
