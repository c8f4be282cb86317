package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const indexBanner = "<h1>Code challenge</h1>"

// IndexHandler serves the HTML banner at the root path
func IndexHandler(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexBanner))
}

// HealthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "pizza-restaurants-api",
	})
}
