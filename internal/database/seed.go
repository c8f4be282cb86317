package database

import (
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"gorm.io/gorm"
)

// SeedIfEmpty seeds the database only when no restaurant exists yet
func SeedIfEmpty(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Restaurant{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info("Database already seeded with initial data")
		return nil
	}
	log.Info("Database is empty, seeding initial data")
	return Seed(db)
}

// Seed inserts the sample restaurants, pizzas and their prices in one transaction
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		restaurants := []models.Restaurant{
			{Name: "Karen's Pizza Shack", Address: "address1"},
			{Name: "Sanjay's Pizza", Address: "address2"},
			{Name: "Kiki's Pizza", Address: "address3"},
		}
		if err := tx.Create(&restaurants).Error; err != nil {
			return err
		}

		pizzas := []models.Pizza{
			{Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"},
			{Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
			{Name: "Melanie", Ingredients: "Dough, Sauce, Ricotta, Red peppers, Mustard"},
		}
		if err := tx.Create(&pizzas).Error; err != nil {
			return err
		}

		restaurantPizzas := []models.RestaurantPizza{
			{RestaurantID: restaurants[0].ID, PizzaID: pizzas[0].ID, Price: 1},
			{RestaurantID: restaurants[1].ID, PizzaID: pizzas[1].ID, Price: 4},
			{RestaurantID: restaurants[2].ID, PizzaID: pizzas[2].ID, Price: 5},
		}
		if err := tx.Create(&restaurantPizzas).Error; err != nil {
			return err
		}

		log.WithField("restaurants", len(restaurants)).Info("Database seeded successfully")
		return nil
	})
}

// Reset deletes every row, associations first
func Reset(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{&models.RestaurantPizza{}, &models.Restaurant{}, &models.Pizza{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
