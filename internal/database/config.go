package database

import (
	"fmt"
	"net/url"
	"strings"
)

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	// Driver specifies the database driver (postgres, sqlite)
	Driver string

	// URI is a complete DSN, when set it takes precedence over the individual fields
	URI string

	// PostgreSQL-specific configuration
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	// SQLite-specific configuration
	Path string

	// Seed inserts sample data when the store is empty
	Seed bool
}

// String returns a string representation with sensitive data masked
func (c *DatabaseConfig) String() string {
	return fmt.Sprintf("DatabaseConfig{Driver: %s, URI: %s, Host: %s, Port: %s, User: %s, Password: [REDACTED], Name: %s, SSLMode: %s, Path: %s, Seed: %t}",
		c.Driver, MaskURI(c.URI), c.Host, c.Port, c.User, c.Name, c.SSLMode, c.Path, c.Seed)
}

// DSN builds a Data Source Name string based on the driver
func (c *DatabaseConfig) DSN() string {
	switch strings.ToLower(c.Driver) {
	case "postgres", "postgresql":
		if c.URI != "" {
			return c.URI
		}
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
	case "sqlite", "":
		path := c.Path
		if c.URI != "" {
			path = strings.TrimPrefix(c.URI, "sqlite://")
		}
		// foreign keys are off by default in SQLite
		if strings.Contains(path, "_foreign_keys") {
			return path
		}
		if strings.Contains(path, "?") {
			return path + "&_foreign_keys=on"
		}
		return path + "?_foreign_keys=on"
	default:
		return ""
	}
}

// MaskURI replaces the password of a URL-style DSN
func MaskURI(uri string) string {
	if uri == "" {
		return ""
	}

	parsed, err := url.Parse(uri)
	if err != nil {
		return "[REDACTED_INVALID_URL]"
	}

	if parsed.User != nil {
		if _, hasPassword := parsed.User.Password(); hasPassword {
			parsed.User = url.UserPassword(parsed.User.Username(), "REDACTED")
		}
	}

	return parsed.String()
}
