package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/config"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/routes"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// @title Pizza Restaurants API
// @version 1.0
// @description Restaurants, pizzas and the prices restaurants charge for them
// @host localhost:5555
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration := loadConfig()
	applyLogLevel(configuration.LogLevel)

	// Initialize database connection
	db := setupDatabase(configuration)
	defer database.Close(db)

	if configuration.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := routes.NewRouter(db, routes.Options{AllowedOrigins: configuration.AllowedOrigins})

	server := &http.Server{
		Addr:         configuration.Address(),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Infof("Starting server on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully")
	ctx, cancel := context.WithTimeout(context.Background(), configuration.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Server shutdown failed")
	}
	log.Info("Server exiting")
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(config.LevelForEnvironment(config.GetEnvWithDefault("APP_ENV", "development")))
}

// applyLogLevel lets LOG_LEVEL override the environment default when it is set and valid
func applyLogLevel(level string) {
	if os.Getenv("LOG_LEVEL") == "" {
		return
	}
	parsed, err := log.ParseLevel(level)
	if err != nil {
		log.WithField("log_level", level).Warn("Invalid LOG_LEVEL, keeping default level")
		return
	}
	log.SetLevel(parsed)
	database.SetLogLevel(parsed)
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase connects, migrates and optionally seeds the database
func setupDatabase(conf *config.Config) *gorm.DB {
	db, err := database.InitDatabase(conf.Database)
	checkPanicErr(err)
	checkPanicErr(database.Migrate(db))

	if conf.Database.Seed {
		checkPanicErr(database.SeedIfEmpty(db))
	}
	return db
}
