package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Index is the root welcome payload listing the main endpoints.
func Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the Dummy Backend API",
		"endpoints": gin.H{
			"health":   "/health",
			"items":    "/items",
			"users":    "/users",
			"login":    "/api/v1/auth/login",
			"projects": "/api/v1/projects",
			"prd":      "/api/get_prd",
		},
	})
}
