package models

// Pizza represents a pizza that restaurants can put on their menu
type Pizza struct {
	ID          int    `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null"`
	Ingredients string `json:"ingredients" gorm:"not null"`

	// RestaurantPizzas are removed by the store when the pizza is deleted
	RestaurantPizzas []RestaurantPizza `json:"-" gorm:"foreignKey:PizzaID;constraint:OnDelete:CASCADE"`
}

func (Pizza) TableName() string {
	return "pizzas"
}

// Restaurants returns the restaurants reachable through the loaded associations.
// RestaurantPizzas.Restaurant must be preloaded, unloaded entries are skipped.
func (p Pizza) Restaurants() []Restaurant {
	restaurants := make([]Restaurant, 0, len(p.RestaurantPizzas))
	for _, rp := range p.RestaurantPizzas {
		if rp.Restaurant != nil {
			restaurants = append(restaurants, *rp.Restaurant)
		}
	}
	return restaurants
}
