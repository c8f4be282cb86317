package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePrice(t *testing.T) {
	testCases := []struct {
		name    string
		price   int
		wantErr bool
	}{
		{name: "lower bound", price: 1},
		{name: "middle", price: 15},
		{name: "upper bound", price: 30},
		{name: "zero", price: 0, wantErr: true},
		{name: "above upper bound", price: 31, wantErr: true},
		{name: "negative", price: -5, wantErr: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePrice(tt.price)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, "price", validationErr.Field)
			assert.Equal(t, PriceOutOfRangeMessage, validationErr.Error())
		})
	}
}

func TestNewRestaurantPizza(t *testing.T) {
	rp, err := NewRestaurantPizza(12, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 12, rp.Price)
	assert.Equal(t, 2, rp.PizzaID)
	assert.Equal(t, 3, rp.RestaurantID)

	rp, err = NewRestaurantPizza(31, 2, 3)
	assert.Error(t, err)
	assert.Nil(t, rp)
}

func TestSetPriceKeepsPreviousValueOnError(t *testing.T) {
	rp := RestaurantPizza{Price: 10}
	assert.Error(t, rp.SetPrice(0))
	assert.Equal(t, 10, rp.Price)
	assert.NoError(t, rp.SetPrice(30))
	assert.Equal(t, 30, rp.Price)
}

func TestMissingFieldError(t *testing.T) {
	err := &MissingFieldError{Field: "pizza_id"}
	assert.Equal(t, "Missing required field: pizza_id", err.Error())
}

func sampleRestaurant() Restaurant {
	pizza := &Pizza{ID: 7, Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"}
	restaurant := Restaurant{ID: 1, Name: "Karen's Pizza Shack", Address: "address1"}
	restaurant.RestaurantPizzas = []RestaurantPizza{
		{ID: 4, Price: 10, RestaurantID: 1, PizzaID: 7, Pizza: pizza, Restaurant: &restaurant},
	}
	return restaurant
}

func TestRestaurantShallowView(t *testing.T) {
	body, err := json.Marshal(sampleRestaurant().ShallowView())
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"Karen's Pizza Shack","address":"address1"}`, string(body))
}

func TestRestaurantWithPizzasViewHasNoBackReference(t *testing.T) {
	body, err := json.Marshal(sampleRestaurant().WithPizzasView())
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &decoded))

	restaurantPizzas, ok := decoded["restaurant_pizzas"].([]interface{})
	require.True(t, ok)
	require.Len(t, restaurantPizzas, 1)

	entry := restaurantPizzas[0].(map[string]interface{})
	assert.NotContains(t, entry, "restaurant")
	assert.Equal(t, float64(10), entry["price"])
	assert.Equal(t, float64(1), entry["restaurant_id"])
	pizza := entry["pizza"].(map[string]interface{})
	assert.Equal(t, "Emma", pizza["name"])
	assert.NotContains(t, pizza, "restaurant_pizzas")
}

func TestRestaurantWithPizzasViewEmptyList(t *testing.T) {
	body, err := json.Marshal(Restaurant{ID: 2, Name: "Empty", Address: "nowhere"}.WithPizzasView())
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":2,"name":"Empty","address":"nowhere","restaurant_pizzas":[]}`, string(body))
}

func TestRestaurantPizzaDetailView(t *testing.T) {
	restaurant := sampleRestaurant()
	body, err := json.Marshal(restaurant.RestaurantPizzas[0].DetailView())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 4,
		"price": 10,
		"pizza_id": 7,
		"restaurant_id": 1,
		"pizza": {"id": 7, "name": "Emma", "ingredients": "Dough, Tomato Sauce, Cheese"},
		"restaurant": {"id": 1, "name": "Karen's Pizza Shack", "address": "address1"}
	}`, string(body))
}

func TestPizzaViewOmitsAssociations(t *testing.T) {
	pizza := Pizza{ID: 1, Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"}
	pizza.RestaurantPizzas = []RestaurantPizza{{ID: 1, Price: 5}}
	body, err := json.Marshal(pizza.View())
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"Geri","ingredients":"Dough, Tomato Sauce, Cheese, Pepperoni"}`, string(body))
}

func TestDerivedRelationships(t *testing.T) {
	restaurant := sampleRestaurant()
	pizzas := restaurant.Pizzas()
	require.Len(t, pizzas, 1)
	assert.Equal(t, "Emma", pizzas[0].Name)

	pizza := Pizza{ID: 7, RestaurantPizzas: restaurant.RestaurantPizzas}
	restaurants := pizza.Restaurants()
	require.Len(t, restaurants, 1)
	assert.Equal(t, 1, restaurants[0].ID)
}

func TestListViews(t *testing.T) {
	assert.Empty(t, RestaurantViews(nil))
	assert.NotNil(t, RestaurantViews(nil))
	views := PizzaViews([]Pizza{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}})
	assert.Equal(t, []PizzaView{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}, views)
}
