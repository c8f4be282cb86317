package database

import (
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or updates the restaurants, pizzas and restaurant_pizzas tables
func Migrate(db *gorm.DB) error {
	log.Info("Migrating database schema")
	if err := db.AutoMigrate(&models.Restaurant{}, &models.Pizza{}, &models.RestaurantPizza{}); err != nil {
		log.WithError(err).Error("Schema migration failed")
		return err
	}
	return nil
}
