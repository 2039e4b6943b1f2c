package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sabeelnahmed/bendersdummy/internal/projects/domain"
)

func strPtr(s string) *string { return &s }

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns id and matching timestamps", func(t *testing.T) {
		repo := NewRepo()

		p, err := repo.Create(ctx, "Alpha", strPtr("first project"))
		require.NoError(t, err)
		assert.NotEmpty(t, p.ID)
		assert.Equal(t, "Alpha", p.Name)
		assert.Equal(t, p.CreatedAt, p.UpdatedAt)
	})

	t.Run("rejects duplicate names case-insensitively", func(t *testing.T) {
		repo := NewRepo()

		_, err := repo.Create(ctx, "Alpha", nil)
		require.NoError(t, err)

		_, err = repo.Create(ctx, "ALPHA", nil)
		assert.ErrorIs(t, err, domain.ErrDuplicateName)

		_, err = repo.Create(ctx, "alpha", nil)
		assert.ErrorIs(t, err, domain.ErrDuplicateName)
	})

	t.Run("newest project comes first", func(t *testing.T) {
		repo := NewRepo()

		_, err := repo.Create(ctx, "older", nil)
		require.NoError(t, err)
		_, err = repo.Create(ctx, "newer", nil)
		require.NoError(t, err)

		page, err := repo.List(ctx, 1, 10, "")
		require.NoError(t, err)
		require.Len(t, page.Projects, 2)
		assert.Equal(t, "newer", page.Projects[0].Name)
		assert.Equal(t, "older", page.Projects[1].Name)
	})
}

func TestList_Pagination(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, n int) *Repo {
		t.Helper()
		repo := NewRepo()
		for i := 1; i <= n; i++ {
			_, err := repo.Create(ctx, fmt.Sprintf("Project %d", i), nil)
			require.NoError(t, err)
		}
		return repo
	}

	t.Run("page 2 of 6 with size 2 returns items 3-4", func(t *testing.T) {
		repo := seed(t, 6)

		page, err := repo.List(ctx, 2, 2, "")
		require.NoError(t, err)
		assert.Equal(t, 6, page.Total)
		assert.Equal(t, 3, page.Pages)
		require.Len(t, page.Projects, 2)
		// Newest first: [6 5 | 4 3 | 2 1]
		assert.Equal(t, "Project 4", page.Projects[0].Name)
		assert.Equal(t, "Project 3", page.Projects[1].Name)
	})

	t.Run("pages is ceil(total/size)", func(t *testing.T) {
		repo := seed(t, 7)

		for _, tc := range []struct {
			size  int
			pages int
		}{
			{size: 1, pages: 7},
			{size: 2, pages: 4},
			{size: 3, pages: 3},
			{size: 7, pages: 1},
			{size: 100, pages: 1},
		} {
			page, err := repo.List(ctx, 1, tc.size, "")
			require.NoError(t, err)
			assert.Equal(t, tc.pages, page.Pages, "size=%d", tc.size)
		}
	})

	t.Run("pages is 0 when empty", func(t *testing.T) {
		repo := NewRepo()

		page, err := repo.List(ctx, 1, 10, "")
		require.NoError(t, err)
		assert.Equal(t, 0, page.Total)
		assert.Equal(t, 0, page.Pages)
		assert.Empty(t, page.Projects)
	})

	t.Run("page past the end is empty, not an error", func(t *testing.T) {
		repo := seed(t, 3)

		page, err := repo.List(ctx, 5, 10, "")
		require.NoError(t, err)
		assert.Equal(t, 3, page.Total)
		assert.Empty(t, page.Projects)
	})

	t.Run("rejects out-of-range page and size", func(t *testing.T) {
		repo := seed(t, 1)

		_, err := repo.List(ctx, 0, 10, "")
		assert.Error(t, err)
		_, err = repo.List(ctx, 1, 0, "")
		assert.Error(t, err)
		_, err = repo.List(ctx, 1, 101, "")
		assert.Error(t, err)
	})
}

func TestList_Search(t *testing.T) {
	ctx := context.Background()
	repo := NewRepo()

	_, err := repo.Create(ctx, "Payments Service", strPtr("handles card payments"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, "Frontend", strPtr("the PAYMENTS dashboard"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, "Search", nil)
	require.NoError(t, err)

	t.Run("matches name and description case-insensitively", func(t *testing.T) {
		page, err := repo.List(ctx, 1, 10, "payments")
		require.NoError(t, err)
		assert.Equal(t, 2, page.Total)
	})

	t.Run("no matches gives empty page with zero pages", func(t *testing.T) {
		page, err := repo.List(ctx, 1, 10, "nomatch")
		require.NoError(t, err)
		assert.Equal(t, 0, page.Total)
		assert.Equal(t, 0, page.Pages)
	})

	t.Run("nil description does not match", func(t *testing.T) {
		page, err := repo.List(ctx, 1, 10, "search")
		require.NoError(t, err)
		assert.Equal(t, 1, page.Total)
	})
}
