package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Database
	DatabaseURL     string
	DBMaxOpenConns  int
	DBMaxIdleConns  int
	DBConnMaxIdle   time.Duration
	DBConnLifetime  time.Duration

	// HTTP
	HTTPHost string
	HTTPPort string

	// Security
	JWTSecret string
	TokenTTL  time.Duration

	// Cookie
	CookieSecure bool

	// Email
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	EmailFrom    string

	// Environment
	Environment string
	LogLevel    string

	// Worker pool
	EmailWorkerPoolSize int
	EmailTaskQueueSize  int

	// Cleanup
	CleanupInterval time.Duration
	TodoRetention   time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		DBMaxOpenConns:      getEnvInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns:      getEnvInt("DB_MAX_IDLE_CONNS", 5),
		HTTPHost:            getEnv("HTTP_HOST", "0.0.0.0"),
		HTTPPort:            getEnv("HTTP_PORT", "8080"),
		JWTSecret:           getEnv("JWT_SECRET", ""),
		CookieSecure:        getEnv("COOKIE_SECURE", "false") == "true",
		SMTPHost:            getEnv("SMTP_HOST", "localhost"),
		SMTPPort:            getEnvInt("SMTP_PORT", 587),
		SMTPUser:            getEnv("SMTP_USER", ""),
		SMTPPassword:        getEnv("SMTP_PASSWORD", ""),
		EmailFrom:           getEnv("EMAIL_FROM", "noreply@example.com"),
		Environment:         getEnv("ENVIRONMENT", "development"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		EmailWorkerPoolSize: getEnvInt("EMAIL_WORKER_POOL_SIZE", 5),
		EmailTaskQueueSize:  getEnvInt("EMAIL_TASK_QUEUE_SIZE", 100),
	}

	// Token lifetime: 10 days unless overridden
	tokenTTLHours := getEnvInt("TOKEN_TTL_HOURS", 240)
	cfg.TokenTTL = time.Duration(tokenTTLHours) * time.Hour

	idleMins := getEnvInt("DB_CONN_MAX_IDLE_MINUTES", 5)
	cfg.DBConnMaxIdle = time.Duration(idleMins) * time.Minute

	lifetimeMins := getEnvInt("DB_CONN_MAX_LIFETIME_MINUTES", 60)
	cfg.DBConnLifetime = time.Duration(lifetimeMins) * time.Minute

	cleanupMins := getEnvInt("CLEANUP_INTERVAL_MINUTES", 60)
	cfg.CleanupInterval = time.Duration(cleanupMins) * time.Minute

	retentionDays := getEnvInt("TODO_RETENTION_DAYS", 30)
	cfg.TodoRetention = time.Duration(retentionDays) * 24 * time.Hour

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if len(c.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters")
	}
	if c.DBMaxOpenConns <= 0 {
		return fmt.Errorf("DB_MAX_OPEN_CONNS must be positive")
	}
	return nil
}

// getEnv retrieves an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intVal
}
