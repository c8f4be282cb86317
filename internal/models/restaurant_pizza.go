package models

import (
	"gorm.io/gorm"
)

// Price bounds for a RestaurantPizza, both inclusive
const (
	MinPrice = 1
	MaxPrice = 30
)

// RestaurantPizza associates a pizza with a restaurant at a given price
type RestaurantPizza struct {
	ID           int `json:"id" gorm:"primaryKey"`
	Price        int `json:"price" gorm:"not null"`
	RestaurantID int `json:"restaurant_id" gorm:"not null;index"`
	PizzaID      int `json:"pizza_id" gorm:"not null;index"`

	Restaurant *Restaurant `json:"-" gorm:"foreignKey:RestaurantID"`
	Pizza      *Pizza      `json:"-" gorm:"foreignKey:PizzaID"`
}

func (RestaurantPizza) TableName() string {
	return "restaurant_pizzas"
}

// NewRestaurantPizza builds an association, rejecting prices outside [MinPrice, MaxPrice]
func NewRestaurantPizza(price, pizzaID, restaurantID int) (*RestaurantPizza, error) {
	rp := &RestaurantPizza{
		PizzaID:      pizzaID,
		RestaurantID: restaurantID,
	}
	if err := rp.SetPrice(price); err != nil {
		return nil, err
	}
	return rp, nil
}

// SetPrice assigns the price only when it is within range
func (rp *RestaurantPizza) SetPrice(price int) error {
	if err := ValidatePrice(price); err != nil {
		return err
	}
	rp.Price = price
	return nil
}

// BeforeSave keeps invalid prices out of the store whatever the write path
func (rp *RestaurantPizza) BeforeSave(tx *gorm.DB) error {
	return ValidatePrice(rp.Price)
}

// ValidatePrice returns a *ValidationError when price is outside [MinPrice, MaxPrice]
func ValidatePrice(price int) error {
	if price < MinPrice || price > MaxPrice {
		return NewValidationError("price", PriceOutOfRangeMessage)
	}
	return nil
}
