package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sabeelnahmed/bendersdummy/internal/projects/domain"
)

const (
	maxNameLen        = 255
	maxDescriptionLen = 1000

	defaultPageSize = 10
)

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}

	name := strings.TrimSpace(req.Name)

	var fieldErrs []fieldError
	if name == "" {
		fieldErrs = append(fieldErrs, fieldError{
			Loc:  []string{"body", "name"},
			Msg:  "Project name cannot be empty",
			Type: "value_error",
		})
	} else if len(name) > maxNameLen {
		fieldErrs = append(fieldErrs, fieldError{
			Loc:  []string{"body", "name"},
			Msg:  "Project name must be at most 255 characters",
			Type: "value_error",
		})
	}
	if req.Description != nil && len(*req.Description) > maxDescriptionLen {
		fieldErrs = append(fieldErrs, fieldError{
			Loc:  []string{"body", "description"},
			Msg:  "Description must be at most 1000 characters",
			Type: "value_error",
		})
	}
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": fieldErrs})
		return
	}

	// Empty description normalises to null.
	description := req.Description
	if description != nil && strings.TrimSpace(*description) == "" {
		description = nil
	}

	p, err := h.repo.Create(c.Request.Context(), name, description)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateName) {
			c.JSON(http.StatusConflict, gin.H{"detail": "A project with this name already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, p)
}

func (h *Handler) list(c *gin.Context) {
	page, pageErr := queryInt(c, "page", 1)
	size, sizeErr := queryInt(c, "size", defaultPageSize)

	var fieldErrs []fieldError
	if pageErr != nil || page < 1 {
		fieldErrs = append(fieldErrs, fieldError{
			Loc:  []string{"query", "page"},
			Msg:  "page must be an integer >= 1",
			Type: "value_error",
		})
	}
	if sizeErr != nil || size < 1 || size > 100 {
		fieldErrs = append(fieldErrs, fieldError{
			Loc:  []string{"query", "size"},
			Msg:  "size must be an integer between 1 and 100",
			Type: "value_error",
		})
	}
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": fieldErrs})
		return
	}

	result, err := h.repo.List(c.Request.Context(), page, size, strings.TrimSpace(c.Query("search")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, listResponse{
		Projects: result.Projects,
		Total:    result.Total,
		Page:     result.Page,
		Size:     result.Size,
		Pages:    result.Pages,
	})
}

func queryInt(c *gin.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
