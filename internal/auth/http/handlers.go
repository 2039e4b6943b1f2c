package http

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sabeelnahmed/bendersdummy/internal/auth"
	"github.com/sabeelnahmed/bendersdummy/internal/auth/sessions"
)

// Handler bundles the dependencies for auth HTTP endpoints.
type Handler struct {
	sessions *sessions.Store
}

func New(store *sessions.Store) *Handler {
	return &Handler{sessions: store}
}

type loginUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// login accepts form-encoded credentials. Any non-empty username with a
// password of at least 3 characters gets a token; nothing is checked against
// a user database.
func (h *Handler) login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	if username == "" || len(password) < 3 {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid username or password"})
		return
	}

	token := auth.NewToken()

	sess := sessions.Session{
		Token:    token,
		Username: username,
		IssuedAt: time.Now().UTC(),
	}
	if err := h.sessions.Put(c.Request.Context(), sess); err != nil {
		// Session tracking is best-effort; the token is already valid by rule.
		log.Printf("record session failed: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"user": loginUser{
			ID:       uuid.NewString(),
			Username: username,
			Email:    username + "@example.com",
			FullName: username,
		},
	})
}
