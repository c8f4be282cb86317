package services

import (
	"context"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"gorm.io/gorm"
)

// RestaurantPizzaService provides methods to manage restaurant pizza associations
type RestaurantPizzaService interface {
	// CreateRestaurantPizza persists a new association and returns it with both endpoints loaded
	CreateRestaurantPizza(ctx context.Context, restaurantPizza models.RestaurantPizza) (models.RestaurantPizza, error)
}

type restaurantPizzaService struct {
	db *gorm.DB
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService
func NewRestaurantPizzaService(db *gorm.DB) RestaurantPizzaService {
	return &restaurantPizzaService{db: db}
}

func (s *restaurantPizzaService) CreateRestaurantPizza(ctx context.Context, restaurantPizza models.RestaurantPizza) (models.RestaurantPizza, error) {
	if err := models.ValidatePrice(restaurantPizza.Price); err != nil {
		return models.RestaurantPizza{}, err
	}

	// endpoints are always loaded from the store, never trusted from the caller
	restaurantPizza.ID = 0
	restaurantPizza.Restaurant = nil
	restaurantPizza.Pizza = nil

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var restaurant models.Restaurant
		if err := tx.First(&restaurant, restaurantPizza.RestaurantID).Error; err != nil {
			return notFound(err, ErrRestaurantNotFound)
		}
		var pizza models.Pizza
		if err := tx.First(&pizza, restaurantPizza.PizzaID).Error; err != nil {
			return notFound(err, ErrPizzaNotFound)
		}
		if err := tx.Create(&restaurantPizza).Error; err != nil {
			return err
		}
		restaurantPizza.Restaurant = &restaurant
		restaurantPizza.Pizza = &pizza
		return nil
	})
	if err != nil {
		return models.RestaurantPizza{}, err
	}
	return restaurantPizza, nil
}
