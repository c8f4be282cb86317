package controllers

import (
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// RestaurantPizzaController handles HTTP requests related to restaurant pizzas
type RestaurantPizzaController interface {
	// CreateRestaurantPizza adds a priced pizza to a restaurant
	CreateRestaurantPizza(c *gin.Context)
}

type restaurantPizzaController struct {
	service services.RestaurantPizzaService
}

// NewRestaurantPizzaController creates a new instance of RestaurantPizzaController
func NewRestaurantPizzaController(service services.RestaurantPizzaService) RestaurantPizzaController {
	return &restaurantPizzaController{service: service}
}

// CreateRestaurantPizzaRequest documents the body accepted by CreateRestaurantPizza
type CreateRestaurantPizzaRequest struct {
	Price        int `json:"price" example:"15"`
	PizzaID      int `json:"pizza_id" example:"1"`
	RestaurantID int `json:"restaurant_id" example:"1"`
}

// CreateRestaurantPizza godoc
// @Summary Create a restaurant pizza
// @Description Associate an existing pizza with an existing restaurant at a price between 1 and 30
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body CreateRestaurantPizzaRequest true "Restaurant pizza"
// @Success 201 {object} models.RestaurantPizzaDetailView
// @Failure 400 {object} models.ValidationErrorResponse
// @Router /restaurant_pizzas [post]
func (c *restaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	// a map keeps absent keys distinguishable from zero values
	var payload map[string]interface{}
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewErrorResponse("Invalid request body"))
		return
	}

	price, ok := intValue(payload["price"])
	if !ok {
		ctx.JSON(http.StatusBadRequest, models.NewValidationErrorResponse(models.PriceOutOfRangeMessage))
		return
	}
	if err := models.ValidatePrice(price); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewValidationErrorResponse(err.Error()))
		return
	}

	pizzaID, err := requiredInt(payload, "pizza_id")
	if err != nil {
		respondCreateError(ctx, err)
		return
	}
	restaurantID, err := requiredInt(payload, "restaurant_id")
	if err != nil {
		respondCreateError(ctx, err)
		return
	}

	restaurantPizza, err := models.NewRestaurantPizza(price, pizzaID, restaurantID)
	if err != nil {
		respondCreateError(ctx, err)
		return
	}

	created, err := c.service.CreateRestaurantPizza(ctx.Request.Context(), *restaurantPizza)
	if err != nil {
		respondCreateError(ctx, err)
		return
	}

	log.WithFields(log.Fields{
		"restaurant_pizza_id": created.ID,
		"restaurant_id":       created.RestaurantID,
		"pizza_id":            created.PizzaID,
	}).Info("Restaurant pizza created")
	ctx.JSON(http.StatusCreated, created.DetailView())
}

// respondCreateError answers validation and missing field errors with an errors list,
// anything else with a single error message
func respondCreateError(ctx *gin.Context, err error) {
	var validationErr *models.ValidationError
	var missingErr *models.MissingFieldError
	switch {
	case errors.As(err, &validationErr), errors.As(err, &missingErr):
		ctx.JSON(http.StatusBadRequest, models.NewValidationErrorResponse(err.Error()))
	default:
		log.WithError(err).Warn("Restaurant pizza creation failed")
		ctx.JSON(http.StatusBadRequest, models.NewErrorResponse(err.Error()))
	}
}

// requiredInt reads an integer field that must be present in the payload
func requiredInt(payload map[string]interface{}, key string) (int, error) {
	raw, exists := payload[key]
	if !exists {
		return 0, &models.MissingFieldError{Field: key}
	}
	value, ok := intValue(raw)
	if !ok {
		return 0, fmt.Errorf("Invalid value for %s: %v", key, raw)
	}
	return value, nil
}

// intValue converts a decoded JSON number holding an integer
func intValue(raw interface{}) (int, bool) {
	number, ok := raw.(float64)
	if !ok || number != math.Trunc(number) || math.Abs(number) > math.MaxInt32 {
		return 0, false
	}
	return int(number), true
}
