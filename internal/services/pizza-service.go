package services

import (
	"context"
	"errors"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"gorm.io/gorm"
)

// ErrPizzaNotFound is returned when no pizza has the requested ID
var ErrPizzaNotFound = errors.New("Pizza not found")

// PizzaService provides methods to interact with the pizza database
type PizzaService interface {
	// GetAllPizzas retrieves all pizzas from the database
	GetAllPizzas(ctx context.Context) ([]models.Pizza, error)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(ctx context.Context, id int) (models.Pizza, error)
	// RestaurantsFor retrieves the restaurants serving a pizza
	RestaurantsFor(ctx context.Context, id int) ([]models.Restaurant, error)
	// DeletePizza deletes a pizza and all of its associations
	DeletePizza(ctx context.Context, id int) error
}

type pizzaService struct {
	db *gorm.DB
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(db *gorm.DB) PizzaService {
	return &pizzaService{db: db}
}

func (s *pizzaService) GetAllPizzas(ctx context.Context) ([]models.Pizza, error) {
	var pizzas []models.Pizza
	if err := s.db.WithContext(ctx).Order("id").Find(&pizzas).Error; err != nil {
		return nil, err
	}
	return pizzas, nil
}

func (s *pizzaService) GetPizzaByID(ctx context.Context, id int) (models.Pizza, error) {
	var pizza models.Pizza
	if err := s.db.WithContext(ctx).First(&pizza, id).Error; err != nil {
		return models.Pizza{}, notFound(err, ErrPizzaNotFound)
	}
	return pizza, nil
}

func (s *pizzaService) RestaurantsFor(ctx context.Context, id int) ([]models.Restaurant, error) {
	var pizza models.Pizza
	err := s.db.WithContext(ctx).
		Preload("RestaurantPizzas", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("RestaurantPizzas.Restaurant").
		First(&pizza, id).Error
	if err != nil {
		return nil, notFound(err, ErrPizzaNotFound)
	}
	return pizza.Restaurants(), nil
}

func (s *pizzaService) DeletePizza(ctx context.Context, id int) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pizza models.Pizza
		if err := tx.First(&pizza, id).Error; err != nil {
			return notFound(err, ErrPizzaNotFound)
		}
		if err := tx.Where("pizza_id = ?", id).Delete(&models.RestaurantPizza{}).Error; err != nil {
			return err
		}
		return tx.Delete(&pizza).Error
	})
}
