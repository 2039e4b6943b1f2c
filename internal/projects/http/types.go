package http

import (
	"github.com/sabeelnahmed/bendersdummy/internal/projects/domain"
	"github.com/sabeelnahmed/bendersdummy/internal/projects/repository"
)

// Handler bundles the dependencies for project HTTP endpoints.
type Handler struct {
	repo *repository.Repo
}

func New(repo *repository.Repo) *Handler {
	return &Handler{repo: repo}
}

type createReq struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// fieldError mirrors the validation-framework error shape of the original
// API: {"detail": [{"loc": [...], "msg": ..., "type": ...}]}.
type fieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

type listResponse struct {
	Projects []domain.Project `json:"projects"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	Size     int              `json:"size"`
	Pages    int              `json:"pages"`
}
