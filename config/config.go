// config/config.go - Environment configuration
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the runtime configuration, read from the environment.
type Config struct {
	Port        string
	AppEnv      string
	CORSOrigins string
	JWTSecret   string

	DBDriver    string
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string
	SQLitePath  string

	// CorpusSource is "file" to serve CorpusPath from memory or "database"
	// to serve verses imported into the verses table.
	CorpusSource   string
	CorpusPath     string
	Translation    string
	MatchThreshold float64

	PersistAttempts  bool
	AttemptRetention time.Duration
	CleanupInterval  time.Duration

	RateLimitRequests int
	RateLimitWindow   time.Duration

	LogFile       string
	LogMaxSizeMB  int
	LogMaxBackups int

	LookupCacheSize int
	LookupCacheTTL  time.Duration
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	SourceFile     = "file"
	SourceDatabase = "database"
)

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "3000"),
		AppEnv:      getEnv("APP_ENV", "development"),
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000"),
		JWTSecret:   os.Getenv("JWT_SECRET"),

		DBDriver:    strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      getEnv("DB_NAME", "urecite"),
		DBSSLMode:   getEnv("DB_SSLMODE", "disable"),
		SQLitePath:  getEnv("SQLITE_PATH", "./data/urecite.db"),

		CorpusSource: strings.ToLower(getEnv("CORPUS_SOURCE", SourceFile)),
		CorpusPath:   getEnv("CORPUS_PATH", "./verses/kjv.json"),
		Translation:  getEnv("TRANSLATION", "KJV"),
	}

	var errs []error
	cfg.MatchThreshold = getEnvFloat("MATCH_THRESHOLD", 70, &errs)
	cfg.PersistAttempts = getEnvBool("PERSIST_ATTEMPTS", true, &errs)
	cfg.AttemptRetention = getEnvDuration("ATTEMPT_RETENTION", 90*24*time.Hour, &errs)
	cfg.CleanupInterval = getEnvDuration("CLEANUP_INTERVAL", 6*time.Hour, &errs)
	cfg.RateLimitRequests = getEnvInt("RATE_LIMIT_REQUESTS", 60, &errs)
	cfg.RateLimitWindow = getEnvDuration("RATE_LIMIT_WINDOW", time.Minute, &errs)
	cfg.LogFile = os.Getenv("LOG_FILE")
	cfg.LogMaxSizeMB = getEnvInt("LOG_MAX_SIZE_MB", 50, &errs)
	cfg.LogMaxBackups = getEnvInt("LOG_MAX_BACKUPS", 3, &errs)
	cfg.LookupCacheSize = getEnvInt("LOOKUP_CACHE_SIZE", 4096, &errs)
	cfg.LookupCacheTTL = getEnvDuration("LOOKUP_CACHE_TTL", 10*time.Minute, &errs)

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges and known enum values.
func (c *Config) Validate() error {
	var errs []error
	if c.MatchThreshold < 0 || c.MatchThreshold > 100 {
		errs = append(errs, fmt.Errorf("MATCH_THRESHOLD must be within [0, 100], got %v", c.MatchThreshold))
	}
	if c.DBDriver != DriverPostgres && c.DBDriver != DriverSQLite {
		errs = append(errs, fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverPostgres, DriverSQLite, c.DBDriver))
	}
	if c.CorpusSource != SourceFile && c.CorpusSource != SourceDatabase {
		errs = append(errs, fmt.Errorf("CORPUS_SOURCE must be %q or %q, got %q", SourceFile, SourceDatabase, c.CorpusSource))
	}
	if c.JWTSecret != "" && len(c.JWTSecret) < 32 {
		errs = append(errs, errors.New("JWT_SECRET must be at least 32 characters long"))
	}
	if c.RateLimitRequests < 1 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_REQUESTS must be positive, got %d", c.RateLimitRequests))
	}
	if c.LookupCacheSize < 0 {
		errs = append(errs, fmt.Errorf("LOOKUP_CACHE_SIZE must not be negative, got %d", c.LookupCacheSize))
	}
	return errors.Join(errs...)
}

// IsProduction reports whether APP_ENV is production.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// PostgresDSN returns DATABASE_URL, or a DSN assembled from the DB_* parts.
func (c *Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int, errs *[]error) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return defaultVal
	}
	return n
}

func getEnvFloat(key string, defaultVal float64, errs *[]error) float64 {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return defaultVal
	}
	return f
}

func getEnvBool(key string, defaultVal bool, errs *[]error) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return defaultVal
	}
	return b
}

func getEnvDuration(key string, defaultVal time.Duration, errs *[]error) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return defaultVal
	}
	return d
}
