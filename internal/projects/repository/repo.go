package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sabeelnahmed/bendersdummy/internal/projects/domain"
)

// Repo keeps projects in an in-memory list, newest first. Nothing survives
// a restart. The mutex keeps concurrent handlers from corrupting the slice.
type Repo struct {
	mu       sync.Mutex
	projects []domain.Project
}

func NewRepo() *Repo {
	return &Repo{projects: make([]domain.Project, 0, 16)}
}

// Create inserts a new project. Name collisions are case-insensitive and
// checked only here; there is no rename path.
func (r *Repo) Create(ctx context.Context, name string, description *string) (*domain.Project, error) {
	if name == "" {
		return nil, fmt.Errorf("name required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	lower := strings.ToLower(name)
	for _, p := range r.projects {
		if strings.ToLower(p.Name) == lower {
			return nil, domain.ErrDuplicateName
		}
	}

	now := time.Now().UTC()
	p := domain.Project{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	r.projects = append([]domain.Project{p}, r.projects...)
	return &p, nil
}

// Page is one page of the project list.
type Page struct {
	Projects []domain.Project
	Total    int
	Page     int
	Size     int
	Pages    int
}

// List filters by case-insensitive substring match on name or description,
// then paginates. Pages past the end come back empty, not as an error.
func (r *Repo) List(ctx context.Context, page, size int, search string) (*Page, error) {
	if page < 1 {
		return nil, fmt.Errorf("page must be >= 1")
	}
	if size < 1 || size > 100 {
		return nil, fmt.Errorf("size must be between 1 and 100")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	matched := r.projects
	if search != "" {
		needle := strings.ToLower(search)
		matched = make([]domain.Project, 0, len(r.projects))
		for _, p := range r.projects {
			if strings.Contains(strings.ToLower(p.Name), needle) {
				matched = append(matched, p)
				continue
			}
			if p.Description != nil && strings.Contains(strings.ToLower(*p.Description), needle) {
				matched = append(matched, p)
			}
		}
	}

	total := len(matched)
	pages := 0
	if total > 0 {
		pages = (total + size - 1) / size
	}

	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	out := make([]domain.Project, end-start)
	copy(out, matched[start:end])

	return &Page{
		Projects: out,
		Total:    total,
		Page:     page,
		Size:     size,
		Pages:    pages,
	}, nil
}

// Count returns the number of stored projects.
func (r *Repo) Count(ctx context.Context) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.projects)
}
