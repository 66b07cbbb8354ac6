package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"ridebook/config"
	"ridebook/handlers"
)

// RegisterRoutes centralizes registration of all endpoints and the CORS
// policy. Cross-origin access is restricted to the configured allow-list of
// frontend origins.
func RegisterRoutes(r *gin.Engine, bh *handlers.BookingHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.CORSOrigins(),
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", handlers.StatusHandler)
	r.GET("/health", handlers.HealthHandler)

	api := r.Group("/api")
	{
		api.POST("/book-ride", bh.BookRide)
		api.GET("/cancel-ride", bh.CancelRide)
	}
}
