package routes

import (
	"time"

	_ "github.com/franciscosanchezn/pizza-restaurants-api/docs" // registers the swagger document
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/controllers"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/middleware"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Options tunes the router built by NewRouter
type Options struct {
	// AllowedOrigins lists the CORS origins, "*" allows any origin
	AllowedOrigins []string
	// Logger receives one entry per request, the standard logger when nil
	Logger *log.Logger
}

// NewRouter wires services, controllers and middleware on a new gin engine
func NewRouter(db *gorm.DB, opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(logger))
	router.Use(cors.New(corsConfig(opts.AllowedOrigins)))

	RegisterRoutes(router,
		controllers.NewRestaurantController(services.NewRestaurantService(db)),
		controllers.NewPizzaController(services.NewPizzaService(db)),
		controllers.NewRestaurantPizzaController(services.NewRestaurantPizzaService(db)),
	)
	return router
}

// RegisterRoutes defines the routes for the gin router
func RegisterRoutes(router *gin.Engine,
	restaurantController controllers.RestaurantController,
	pizzaController controllers.PizzaController,
	restaurantPizzaController controllers.RestaurantPizzaController,
) {
	router.GET("/", controllers.IndexHandler)
	router.GET("/health", controllers.HealthCheckHandler)

	router.GET("/restaurants", restaurantController.GetAllRestaurants)
	router.GET("/restaurants/:id", restaurantController.GetRestaurantByID)
	router.DELETE("/restaurants/:id", restaurantController.DeleteRestaurant)

	router.GET("/pizzas", pizzaController.GetAllPizzas)

	router.POST("/restaurant_pizzas", restaurantPizzaController.CreateRestaurantPizza)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func corsConfig(allowedOrigins []string) cors.Config {
	config := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(allowedOrigins) == 0 || (len(allowedOrigins) == 1 && allowedOrigins[0] == "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = allowedOrigins
	}
	return config
}
