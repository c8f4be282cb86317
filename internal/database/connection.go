package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogLevel aligns the package logger with the application log level
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// retryDelays is the wait before each new connection attempt, its length bounds the retries
var retryDelays = []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second}

// InitDatabase initializes the database connection based on the provided configuration
// It supports both PostgreSQL and SQLite drivers with automatic retry logic and connection pooling
func InitDatabase(cfg DatabaseConfig) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	driver := strings.ToLower(cfg.Driver)

	log.WithFields(logrus.Fields{
		"db_driver": driver,
		"db_host":   cfg.Host,
		"db_name":   cfg.Name,
		"db_path":   cfg.Path,
	}).Info("Initializing database connection")

	gormConfig := &gorm.Config{
		NamingStrategy: namingConvention{},
		Logger:         logger.Default.LogMode(logger.Silent),
	}

	maxAttempts := len(retryDelays) + 1
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		log.WithFields(logrus.Fields{
			"attempt":      attempt,
			"max_attempts": maxAttempts,
		}).Debug("Attempting database connection")

		switch driver {
		case "postgres", "postgresql":
			log.WithField("dsn_host", cfg.Host).Debug("Connecting to PostgreSQL")
			db, err = gorm.Open(postgres.Open(cfg.DSN()), gormConfig)

		case "sqlite", "":
			log.WithField("db_path", cfg.Path).Debug("Connecting to SQLite")
			db, err = gorm.Open(sqlite.Open(cfg.DSN()), gormConfig)

		default:
			return nil, fmt.Errorf("unsupported database driver: %s (supported: postgres, sqlite)", cfg.Driver)
		}

		if err == nil {
			err = verifyConnection(db, driver)
			if err == nil {
				log.WithFields(logrus.Fields{
					"db_driver": driver,
					"attempt":   attempt,
				}).Info("Database initialized successfully")
				return db, nil
			}
		}

		log.WithFields(logrus.Fields{
			"attempt": attempt,
			"error":   err.Error(),
		}).Warn("Database connection attempt failed")

		if attempt < maxAttempts {
			delay := retryDelays[attempt-1]
			log.WithField("delay", delay).Info("Retrying database connection")
			time.Sleep(delay)
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxAttempts, err)
}

// verifyConnection pings the database and configures the pool
func verifyConnection(db *gorm.DB, driver string) error {
	sqlDB, err := db.DB()
	if err != nil {
		log.WithError(err).Error("Failed to get database instance")
		return err
	}
	if err := sqlDB.Ping(); err != nil {
		log.WithError(err).Error("Failed to ping database")
		return err
	}
	configureConnectionPool(sqlDB, driver)
	return nil
}

// configureConnectionPool sets up connection pool parameters for the driver
func configureConnectionPool(sqlDB *sql.DB, driver string) {
	maxOpen, maxIdle, maxLifetime := 25, 5, 5*time.Minute
	if driver == "sqlite" || driver == "" {
		// SQLite allows a single writer and every :memory: connection is a separate database,
		// so the one connection must never be recycled
		maxOpen, maxIdle, maxLifetime = 1, 1, 0
	}

	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(maxLifetime)

	log.WithFields(logrus.Fields{
		"max_open_conns":    maxOpen,
		"max_idle_conns":    maxIdle,
		"conn_max_lifetime": maxLifetime.String(),
	}).Debug("Connection pool configured")
}

// Close releases the underlying connection pool
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
