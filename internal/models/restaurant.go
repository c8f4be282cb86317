package models

// Restaurant represents a restaurant and the pizzas it serves
type Restaurant struct {
	ID      int    `json:"id" gorm:"primaryKey"`
	Name    string `json:"name" gorm:"not null"`
	Address string `json:"address" gorm:"not null"`

	// RestaurantPizzas are removed by the store when the restaurant is deleted
	RestaurantPizzas []RestaurantPizza `json:"-" gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}

// Pizzas returns the pizzas reachable through the loaded associations.
// RestaurantPizzas.Pizza must be preloaded, unloaded entries are skipped.
func (r Restaurant) Pizzas() []Pizza {
	pizzas := make([]Pizza, 0, len(r.RestaurantPizzas))
	for _, rp := range r.RestaurantPizzas {
		if rp.Pizza != nil {
			pizzas = append(pizzas, *rp.Pizza)
		}
	}
	return pizzas
}
