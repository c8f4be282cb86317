package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)
	db, err := database.InitDatabase(database.DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.Seed(db))
	t.Cleanup(func() { database.Close(db) })

	logger, _ := test.NewNullLogger()
	return NewRouter(db, Options{AllowedOrigins: []string{"*"}, Logger: logger}), db
}

func doRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		encoded, _ := json.Marshal(b)
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeObject(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func TestIndex(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(router, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Equal(t, "<h1>Code challenge</h1>", w.Body.String())
}

func TestHealth(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", decodeObject(t, w)["status"])
}

func TestGetRestaurants(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(router, http.MethodGet, "/restaurants", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var restaurants []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &restaurants))
	require.Len(t, restaurants, 3)
	for _, r := range restaurants {
		assert.ElementsMatch(t, []string{"id", "name", "address"}, keys(r))
	}
}

func TestGetRestaurantByID(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(router, http.MethodGet, "/restaurants/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	response := decodeObject(t, w)
	assert.Equal(t, float64(1), response["id"])
	assert.Equal(t, "Karen's Pizza Shack", response["name"])
	restaurantPizzas := response["restaurant_pizzas"].([]interface{})
	require.Len(t, restaurantPizzas, 1)

	entry := restaurantPizzas[0].(map[string]interface{})
	assert.NotContains(t, entry, "restaurant")
	assert.Equal(t, "Emma", entry["pizza"].(map[string]interface{})["name"])
}

func TestGetRestaurantNotFound(t *testing.T) {
	router, _ := setupTestRouter(t)

	for _, path := range []string{"/restaurants/0", "/restaurants/999", "/restaurants/abc"} {
		w := doRequest(router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.JSONEq(t, `{"error": "Restaurant not found"}`, w.Body.String(), path)
	}
}

func TestDeleteRestaurant(t *testing.T) {
	router, db := setupTestRouter(t)
	require.NoError(t, db.Create(&models.RestaurantPizza{RestaurantID: 1, PizzaID: 2, Price: 20}).Error)

	w := doRequest(router, http.MethodDelete, "/restaurants/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	var count int64
	require.NoError(t, db.Model(&models.RestaurantPizza{}).Where("restaurant_id = ?", 1).Count(&count).Error)
	assert.Zero(t, count)

	w = doRequest(router, http.MethodGet, "/restaurants/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(router, http.MethodDelete, "/restaurants/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Restaurant not found"}`, w.Body.String())
}

func TestGetPizzas(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(router, http.MethodGet, "/pizzas", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var pizzas []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pizzas))
	require.Len(t, pizzas, 3)
	for _, p := range pizzas {
		assert.ElementsMatch(t, []string{"id", "name", "ingredients"}, keys(p))
	}
}

func TestCreateRestaurantPizza(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(router, http.MethodPost, "/restaurant_pizzas", gin.H{"price": 15, "pizza_id": 1, "restaurant_id": 1})
	require.Equal(t, http.StatusCreated, w.Code)

	response := decodeObject(t, w)
	assert.Equal(t, float64(15), response["price"])
	assert.Equal(t, float64(1), response["pizza_id"])
	assert.Equal(t, float64(1), response["restaurant_id"])
	assert.Equal(t, "Emma", response["pizza"].(map[string]interface{})["name"])
	restaurant := response["restaurant"].(map[string]interface{})
	assert.Equal(t, "Karen's Pizza Shack", restaurant["name"])
	assert.NotContains(t, restaurant, "restaurant_pizzas")
}

func TestCreateRestaurantPizzaPriceRange(t *testing.T) {
	router, _ := setupTestRouter(t)

	for price := -1; price <= 32; price++ {
		t.Run(fmt.Sprintf("price %d", price), func(t *testing.T) {
			w := doRequest(router, http.MethodPost, "/restaurant_pizzas", gin.H{"price": price, "pizza_id": 2, "restaurant_id": 3})
			if price >= models.MinPrice && price <= models.MaxPrice {
				assert.Equal(t, http.StatusCreated, w.Code)
				return
			}
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"errors": ["Price must be between 1 and 30"]}`, w.Body.String())
		})
	}
}

func TestCreateRestaurantPizzaMissingPrice(t *testing.T) {
	router, _ := setupTestRouter(t)

	for _, body := range []interface{}{
		gin.H{"pizza_id": 1, "restaurant_id": 1},
		gin.H{"price": nil, "pizza_id": 1, "restaurant_id": 1},
		gin.H{"price": "cheap", "pizza_id": 1, "restaurant_id": 1},
		gin.H{"price": 12.5, "pizza_id": 1, "restaurant_id": 1},
		"null",
	} {
		w := doRequest(router, http.MethodPost, "/restaurant_pizzas", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"errors": ["Price must be between 1 and 30"]}`, w.Body.String())
	}
}

func TestCreateRestaurantPizzaMissingFields(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(router, http.MethodPost, "/restaurant_pizzas", gin.H{"price": 5, "restaurant_id": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"errors": ["Missing required field: pizza_id"]}`, w.Body.String())

	w = doRequest(router, http.MethodPost, "/restaurant_pizzas", gin.H{"price": 5, "pizza_id": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"errors": ["Missing required field: restaurant_id"]}`, w.Body.String())
}

func TestCreateRestaurantPizzaGenericFailures(t *testing.T) {
	router, db := setupTestRouter(t)

	testCases := []struct {
		name    string
		body    interface{}
		message string
	}{
		{name: "unknown restaurant", body: gin.H{"price": 5, "pizza_id": 1, "restaurant_id": 42}, message: "Restaurant not found"},
		{name: "unknown pizza", body: gin.H{"price": 5, "pizza_id": 42, "restaurant_id": 1}, message: "Pizza not found"},
		{name: "non numeric id", body: gin.H{"price": 5, "pizza_id": "one", "restaurant_id": 1}, message: "Invalid value for pizza_id: one"},
		{name: "malformed json", body: `{"price": `, message: "Invalid request body"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodPost, "/restaurant_pizzas", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.message, decodeObject(t, w)["error"])
		})
	}

	var count int64
	require.NoError(t, db.Model(&models.RestaurantPizza{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}

func TestCORSPreflight(t *testing.T) {
	router, _ := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/restaurant_pizzas", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSwaggerDocument(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(router, http.MethodGet, "/swagger/doc.json", nil)
	require.Equal(t, http.StatusOK, w.Code)
	paths := decodeObject(t, w)["paths"].(map[string]interface{})
	assert.Contains(t, paths, "/restaurant_pizzas")
	assert.Contains(t, paths, "/restaurants/{id}")
}

func keys(m map[string]interface{}) []string {
	result := make([]string, 0, len(m))
	for k := range m {
		result = append(result, k)
	}
	return result
}
