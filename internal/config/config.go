package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// HTTP Server
	Port string

	// Upload limits
	MaxUploadBytes int64

	// Uploads session store
	UploadTTL       time.Duration
	UploadStoreSize int

	// Logging
	LogLevel string
	AppEnv   string
}

func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "8081"),
		MaxUploadBytes:  getEnvInt64("MAX_UPLOAD_BYTES", 10<<20),
		UploadTTL:       getEnvDuration("UPLOAD_TTL", 15*time.Minute),
		UploadStoreSize: getEnvInt("UPLOAD_STORE_SIZE", 100),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		AppEnv:          getEnv("APP_ENV", "prod"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.MaxUploadBytes < 1024 {
		errs = append(errs, fmt.Sprintf("invalid max upload bytes %d: must be at least 1024", c.MaxUploadBytes))
	} else if c.MaxUploadBytes > 256<<20 {
		errs = append(errs, fmt.Sprintf("invalid max upload bytes %d: must be at most 256MB", c.MaxUploadBytes))
	}

	if c.UploadTTL < time.Second {
		errs = append(errs, fmt.Sprintf("invalid upload TTL %v: must be at least 1 second", c.UploadTTL))
	} else if c.UploadTTL > 24*time.Hour {
		errs = append(errs, fmt.Sprintf("invalid upload TTL %v: must be at most 24 hours", c.UploadTTL))
	}

	if c.UploadStoreSize < 1 {
		errs = append(errs, fmt.Sprintf("invalid upload store size %d: must be at least 1", c.UploadStoreSize))
	} else if c.UploadStoreSize > 10000 {
		errs = append(errs, fmt.Sprintf("invalid upload store size %d: must be at most 10000", c.UploadStoreSize))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}

	switch c.AppEnv {
	case "dev", "prod":
	default:
		errs = append(errs, fmt.Sprintf("invalid app env '%s': must be 'dev' or 'prod'", c.AppEnv))
	}

	if len(errs) > 0 {
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

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
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
