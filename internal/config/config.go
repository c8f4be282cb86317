package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(LevelForEnvironment(GetEnvWithDefault("APP_ENV", "development")))
}

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Environment     string        `json:"environment"`
	Port            int           `json:"port"`
	Host            string        `json:"host"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
	AllowedOrigins  []string      `json:"allowed_origins"`

	// Logging configuration
	LogLevel string `json:"log_level"`

	// Database configuration
	Database database.DatabaseConfig `json:"-"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Environment: %s, Port: %d, Host: %s, ShutdownTimeout: %s, AllowedOrigins: %v, LogLevel: %s, Database: %s}",
		c.Environment, c.Port, c.Host, c.ShutdownTimeout, c.AllowedOrigins, c.LogLevel, c.Database.String())
}

// Address returns the host:port the server listens on
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// Returns an error if any variable holds an invalid value
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "5555"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("invalid APP_PORT: %d is out of range", port)
	}

	driver := strings.ToLower(GetEnvWithDefault("DB_DRIVER", "sqlite"))
	switch driver {
	case "sqlite", "postgres", "postgresql":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER: %s (supported: postgres, sqlite)", driver)
	}

	dbURI := GetEnvWithDefault("DB_URI", "")
	if dbURI != "" && driver != "sqlite" {
		if _, err := url.ParseRequestURI(dbURI); err != nil {
			return nil, fmt.Errorf("invalid DB_URI format: %w", err)
		}
	}

	config := &Config{
		Environment:     GetEnvWithDefault("APP_ENV", "development"),
		Port:            port,
		Host:            GetEnvWithDefault("APP_HOST", "localhost"),
		ShutdownTimeout: time.Duration(GetEnvAsType("SHUTDOWN_TIMEOUT_SECONDS", 5)) * time.Second,
		AllowedOrigins:  splitList(GetEnvWithDefault("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:        GetEnvWithDefault("LOG_LEVEL", "info"),
		Database: database.DatabaseConfig{
			Driver:   driver,
			URI:      dbURI,
			Host:     GetEnvWithDefault("DB_HOST", "localhost"),
			Port:     GetEnvWithDefault("DB_PORT", "5432"),
			User:     GetEnvWithDefault("DB_USER", "postgres"),
			Password: GetEnvWithDefault("DB_PASSWORD", ""),
			Name:     GetEnvWithDefault("DB_NAME", "pizza_restaurants"),
			SSLMode:  GetEnvWithDefault("DB_SSLMODE", "disable"),
			Path:     GetEnvWithDefault("DB_PATH", "app.db"),
			Seed:     GetEnvAsType("DB_SEED", true),
		},
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// LevelForEnvironment maps APP_ENV to the default log level
func LevelForEnvironment(environment string) logrus.Level {
	switch environment {
	case "development":
		return logrus.DebugLevel
	case "production":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// splitList splits a comma separated value, dropping empty entries
func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value", key)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
