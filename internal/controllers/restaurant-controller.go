package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// RestaurantController handles HTTP requests related to restaurants
type RestaurantController interface {
	// GetAllRestaurants retrieves all restaurants
	GetAllRestaurants(c *gin.Context)
	// GetRestaurantByID retrieves a restaurant with its pizzas
	GetRestaurantByID(c *gin.Context)
	// DeleteRestaurant deletes a restaurant by its ID
	DeleteRestaurant(c *gin.Context)
}

type restaurantController struct {
	service services.RestaurantService
}

// NewRestaurantController creates a new instance of RestaurantController
func NewRestaurantController(service services.RestaurantService) RestaurantController {
	return &restaurantController{service: service}
}

// GetAllRestaurants godoc
// @Summary Get all restaurants
// @Description Get a list of all restaurants without their pizzas
// @Tags restaurants
// @Produce json
// @Success 200 {array} models.RestaurantView
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants [get]
func (c *restaurantController) GetAllRestaurants(ctx *gin.Context) {
	restaurants, err := c.service.GetAllRestaurants(ctx.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to retrieve restaurants")
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to retrieve restaurants"))
		return
	}
	ctx.JSON(http.StatusOK, models.RestaurantViews(restaurants))
}

// GetRestaurantByID godoc
// @Summary Get restaurant by ID
// @Description Get a single restaurant with its restaurant_pizzas and their pizza
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} models.RestaurantWithPizzasView
// @Failure 404 {object} models.ErrorResponse
// @Router /restaurants/{id} [get]
func (c *restaurantController) GetRestaurantByID(ctx *gin.Context) {
	id, ok := restaurantIDParam(ctx)
	if !ok {
		return
	}

	restaurant, err := c.service.GetRestaurantByID(ctx.Request.Context(), id)
	if err != nil {
		respondRestaurantError(ctx, id, err, "Failed to retrieve restaurant")
		return
	}
	ctx.JSON(http.StatusOK, restaurant.WithPizzasView())
}

// DeleteRestaurant godoc
// @Summary Delete a restaurant
// @Description Delete a restaurant and every restaurant_pizza referencing it
// @Tags restaurants
// @Param id path int true "Restaurant ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /restaurants/{id} [delete]
func (c *restaurantController) DeleteRestaurant(ctx *gin.Context) {
	id, ok := restaurantIDParam(ctx)
	if !ok {
		return
	}

	if err := c.service.DeleteRestaurant(ctx.Request.Context(), id); err != nil {
		respondRestaurantError(ctx, id, err, "Failed to delete restaurant")
		return
	}
	log.WithField("restaurant_id", id).Info("Restaurant deleted")
	ctx.Status(http.StatusNoContent)
}

// restaurantIDParam parses the id path parameter.
// Non-numeric ids cannot name a restaurant and are answered as not found.
func restaurantIDParam(ctx *gin.Context) (int, bool) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse(services.ErrRestaurantNotFound.Error()))
		return 0, false
	}
	return id, true
}

func respondRestaurantError(ctx *gin.Context, id int, err error, message string) {
	if errors.Is(err, services.ErrRestaurantNotFound) {
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse(services.ErrRestaurantNotFound.Error()))
		return
	}
	log.WithError(err).WithField("restaurant_id", id).Error(message)
	ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse(message))
}
