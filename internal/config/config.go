// Package config loads server settings from the environment, with optional
// .env file support.
package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage and lock backends.
const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"

	LockLocal = "local"
	LockRedis = "redis"
)

type Config struct {
	// HTTP servers
	Port        string
	MetricsPort string

	// Database
	DBDriver string
	DBPath   string
	MySQLDSN string

	// Redis, optional unless LockBackend is redis
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	// Ledger
	LockBackend string
	LockWait    time.Duration

	// Auth
	JWTSecret string

	// Logging
	LogLevel  string
	LogFormat string
}

// Load reads a .env file if present, then the environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8080"),
		MetricsPort: getEnv("METRICS_PORT", "9090"),

		DBDriver: getEnv("DB_DRIVER", DriverSQLite),
		DBPath:   getEnv("DB_PATH", "./data/groceryroom.db"),
		MySQLDSN: getEnv("MYSQL_DSN", ""),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		CacheTTL:      getEnvDuration("CACHE_TTL", 30*time.Second),

		LockBackend: getEnv("LOCK_BACKEND", LockLocal),
		LockWait:    getEnvDuration("LOCK_WAIT", 5*time.Second),

		JWTSecret: getEnv("JWT_SECRET", ""),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var errs []string

	for name, port := range map[string]string{"port": c.Port, "metrics port": c.MetricsPort} {
		if p, err := strconv.Atoi(port); err != nil {
			errs = append(errs, fmt.Sprintf("invalid %s '%s': must be a number", name, port))
		} else if p < 1 || p > 65535 {
			errs = append(errs, fmt.Sprintf("invalid %s %d: must be between 1 and 65535", name, p))
		}
	}
	if c.Port == c.MetricsPort {
		errs = append(errs, "port and metrics port must differ")
	}

	switch c.DBDriver {
	case DriverSQLite:
		if c.DBPath == "" {
			errs = append(errs, "DB_PATH cannot be empty when using the sqlite driver")
		}
	case DriverMySQL:
		if c.MySQLDSN == "" {
			errs = append(errs, "MYSQL_DSN is required when using the mysql driver")
		}
	default:
		errs = append(errs, fmt.Sprintf("invalid database driver '%s': must be one of %v", c.DBDriver, []string{DriverSQLite, DriverMySQL}))
	}

	switch c.LockBackend {
	case LockLocal:
	case LockRedis:
		if c.RedisAddr == "" {
			errs = append(errs, "REDIS_ADDR is required when using the redis lock backend")
		}
	default:
		errs = append(errs, fmt.Sprintf("invalid lock backend '%s': must be one of %v", c.LockBackend, []string{LockLocal, LockRedis}))
	}
	if c.RedisDB < 0 {
		errs = append(errs, fmt.Sprintf("invalid redis db %d: must not be negative", c.RedisDB))
	}
	if c.RedisAddr != "" && c.CacheTTL <= 0 {
		errs = append(errs, fmt.Sprintf("CACHE_TTL must be positive when REDIS_ADDR is set, got %v", c.CacheTTL))
	} else if c.CacheTTL < 0 {
		errs = append(errs, fmt.Sprintf("invalid cache ttl %v: must not be negative", c.CacheTTL))
	}
	if c.LockWait < 10*time.Millisecond {
		errs = append(errs, fmt.Sprintf("invalid lock wait %v: must be at least 10ms", c.LockWait))
	}

	if len(c.JWTSecret) < 16 {
		errs = append(errs, "JWT_SECRET must be at least 16 characters")
	}

	if !slices.Contains([]string{"debug", "info", "warn", "error"}, strings.ToLower(c.LogLevel)) {
		errs = append(errs, fmt.Sprintf("invalid log level '%s'", c.LogLevel))
	}
	if !slices.Contains([]string{"text", "json"}, c.LogFormat) {
		errs = append(errs, fmt.Sprintf("invalid log format '%s': must be text or json", c.LogFormat))
	}

	if len(errs) > 0 {
		slices.Sort(errs)
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
