package legacy

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo *Repo
}

// Register attaches the legacy items/users routes at the router root,
// matching the original service surface.
func Register(r gin.IRouter, repo *Repo) {
	h := &Handler{repo: repo}

	r.GET("/items", h.listItems)
	r.GET("/items/:id", h.getItem)
	r.POST("/items", h.createItem)
	r.PUT("/items/:id", h.updateItem)
	r.DELETE("/items/:id", h.deleteItem)

	r.GET("/users", h.listUsers)
	r.GET("/users/:id", h.getUser)
	r.POST("/users", h.createUser)
	r.DELETE("/users/:id", h.deleteUser)
}

type itemReq struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
}

type userReq struct {
	Username string  `json:"username"`
	Email    string  `json:"email"`
	FullName *string `json:"full_name"`
}

func (h *Handler) listItems(c *gin.Context) {
	c.JSON(http.StatusOK, h.repo.Items())
}

func (h *Handler) getItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	it, err := h.repo.ItemByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Item not found"})
		return
	}
	c.JSON(http.StatusOK, it)
}

func (h *Handler) createItem(c *gin.Context) {
	var req itemReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}

	it := h.repo.CreateItem(Item{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
	})
	c.JSON(http.StatusCreated, it)
}

func (h *Handler) updateItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req itemReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}

	it, err := h.repo.UpdateItem(id, Item{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Item not found"})
		return
	}
	c.JSON(http.StatusOK, it)
}

func (h *Handler) deleteItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.repo.DeleteItem(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Item %d deleted successfully", id)})
}

func (h *Handler) listUsers(c *gin.Context) {
	c.JSON(http.StatusOK, h.repo.Users())
}

func (h *Handler) getUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	u, err := h.repo.UserByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *Handler) createUser(c *gin.Context) {
	var req userReq
	if err := c.ShouldBindJSON(&req); err != nil ||
		strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Email) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}

	u := h.repo.CreateUser(User{
		Username: strings.TrimSpace(req.Username),
		Email:    strings.TrimSpace(req.Email),
		FullName: req.FullName,
	})
	c.JSON(http.StatusCreated, u)
}

func (h *Handler) deleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.repo.DeleteUser(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("User %d deleted successfully", id)})
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "id must be an integer"})
		return 0, false
	}
	return id, true
}
