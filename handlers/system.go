package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusHandler answers the root route used by uptime checks.
func StatusHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "Server is running"})
}

// HealthHandler is the liveness endpoint.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
