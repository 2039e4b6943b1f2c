package http

import "github.com/gin-gonic/gin"

// Register attaches auth routes to the given router group. The extra
// handlers run before login (rate limiting, typically).
func (h *Handler) Register(rg *gin.RouterGroup, before ...gin.HandlerFunc) {
	handlers := append(append([]gin.HandlerFunc{}, before...), h.login)
	rg.POST("/login", handlers...)
}
