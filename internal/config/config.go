package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// HTTP server
	Port     string
	LogLevel slog.Level

	// Ledger backend
	DataBackend string
	SQLiteDSN   string

	// Category seed file (optional; built-in list when absent)
	CategoriesFile string

	// Export
	ExportDir      string
	ExportFilename string
	ShareCommand   string
	ShareTimeout   time.Duration
}

func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "8081"),
		LogLevel: parseLevel(getEnv("LOG_LEVEL", "info")),

		DataBackend: getEnv("DATA_BACKEND", "memory"),
		SQLiteDSN:   getEnv("SQLITE_DSN", ":memory:"),

		CategoriesFile: getEnv("CATEGORIES_FILE", ""),

		ExportDir:      getEnv("EXPORT_DIR", "./exports"),
		ExportFilename: getEnv("EXPORT_FILENAME", "finance_export.csv"),
		ShareCommand:   getEnv("EXPORT_SHARE_CMD", ""),
		ShareTimeout:   getEnvDuration("EXPORT_SHARE_TIMEOUT", 15*time.Second),
	}
}

// Validate checks the configuration and returns all problems at once.
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.DataBackend {
	case "memory", "sqlite":
	default:
		errs = append(errs, fmt.Sprintf("invalid data backend '%s': must be one of [memory sqlite]", c.DataBackend))
	}

	if c.DataBackend == "sqlite" && c.SQLiteDSN == "" {
		errs = append(errs, "SQLite DSN cannot be empty when using sqlite backend")
	}

	if c.ExportDir == "" {
		errs = append(errs, "export directory cannot be empty")
	}
	if strings.TrimSpace(c.ExportFilename) == "" {
		errs = append(errs, "export filename cannot be empty")
	} else if strings.ContainsAny(c.ExportFilename, `/\`) {
		errs = append(errs, fmt.Sprintf("invalid export filename '%s': must not contain path separators", c.ExportFilename))
	}

	if c.ShareTimeout < time.Second {
		errs = append(errs, fmt.Sprintf("invalid share timeout %v: must be at least 1 second", c.ShareTimeout))
	} else if c.ShareTimeout > 5*time.Minute {
		errs = append(errs, fmt.Sprintf("invalid share timeout %v: must be at most 5 minutes", c.ShareTimeout))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
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
