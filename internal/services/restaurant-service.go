package services

import (
	"context"
	"errors"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"gorm.io/gorm"
)

// ErrRestaurantNotFound is returned when no restaurant has the requested ID
var ErrRestaurantNotFound = errors.New("Restaurant not found")

// RestaurantService provides methods to interact with the restaurant database
type RestaurantService interface {
	// GetAllRestaurants retrieves all restaurants without their associations
	GetAllRestaurants(ctx context.Context) ([]models.Restaurant, error)
	// GetRestaurantByID retrieves a restaurant with its associations and their pizzas
	GetRestaurantByID(ctx context.Context, id int) (models.Restaurant, error)
	// DeleteRestaurant deletes a restaurant and all of its associations
	DeleteRestaurant(ctx context.Context, id int) error
	// PizzasFor retrieves the pizzas a restaurant serves
	PizzasFor(ctx context.Context, id int) ([]models.Pizza, error)
}

type restaurantService struct {
	db *gorm.DB
}

// NewRestaurantService creates a new instance of RestaurantService
func NewRestaurantService(db *gorm.DB) RestaurantService {
	return &restaurantService{db: db}
}

func (s *restaurantService) GetAllRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := s.db.WithContext(ctx).Order("id").Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (s *restaurantService) GetRestaurantByID(ctx context.Context, id int) (models.Restaurant, error) {
	var restaurant models.Restaurant
	err := s.db.WithContext(ctx).
		Preload("RestaurantPizzas", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("RestaurantPizzas.Pizza").
		First(&restaurant, id).Error
	if err != nil {
		return models.Restaurant{}, notFound(err, ErrRestaurantNotFound)
	}
	return restaurant, nil
}

// DeleteRestaurant removes the associations explicitly before the restaurant
// so the cascade does not depend on the store enforcing foreign keys
func (s *restaurantService) DeleteRestaurant(ctx context.Context, id int) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var restaurant models.Restaurant
		if err := tx.First(&restaurant, id).Error; err != nil {
			return notFound(err, ErrRestaurantNotFound)
		}
		if err := tx.Where("restaurant_id = ?", id).Delete(&models.RestaurantPizza{}).Error; err != nil {
			return err
		}
		return tx.Delete(&restaurant).Error
	})
}

func (s *restaurantService) PizzasFor(ctx context.Context, id int) ([]models.Pizza, error) {
	restaurant, err := s.GetRestaurantByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return restaurant.Pizzas(), nil
}

// notFound maps gorm's missing record error to the domain error
func notFound(err, domainErr error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr
	}
	return err
}
