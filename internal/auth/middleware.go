package auth

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sabeelnahmed/bendersdummy/internal/auth/sessions"
)

const (
	CtxToken    = "auth_token"
	CtxUsername = "auth_username"
)

// RequireToken validates the bearer token and aborts with 401 otherwise.
// Acceptance is purely rule-based; when the token matches a recorded session
// its TTL is refreshed and the username is placed in the request context.
func RequireToken(store *sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
			c.Abort()
			return
		}

		if err := VerifyToken(token); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(CtxToken, token)

		if store != nil {
			sess, err := store.Get(c.Request.Context(), token)
			switch {
			case err == nil:
				c.Set(CtxUsername, sess.Username)
				if err := store.Touch(c.Request.Context(), token); err != nil && !errors.Is(err, sessions.ErrNotFound) {
					log.Printf("session touch failed: %v", err)
				}
			case errors.Is(err, sessions.ErrNotFound):
				// Tokens not minted by this process still pass the rules.
			default:
				log.Printf("session lookup failed: %v", err)
			}
		}

		c.Next()
	}
}

// Username extracts the session username from the Gin context, if any.
func Username(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxUsername))
}

// extractToken extracts the Bearer token from the Authorization header
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.HasPrefix(bearerToken, "Bearer ") {
		return bearerToken[7:]
	}
	return ""
}
