package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sabeelnahmed/bendersdummy/internal/auth"
	"github.com/sabeelnahmed/bendersdummy/internal/projects/domain"
	"github.com/sabeelnahmed/bendersdummy/internal/projects/repository"
)

const testToken = "mock_jwt_abcdef123456"

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	grp := r.Group("/api/v1/projects")
	grp.Use(auth.RequireToken(nil))
	New(repository.NewRepo()).Register(grp)
	return r
}

func doJSON(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestProjects_Auth(t *testing.T) {
	r := setupRouter()

	t.Run("missing token", func(t *testing.T) {
		rr := doJSON(r, "GET", "/api/v1/projects", "", "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("token too short", func(t *testing.T) {
		rr := doJSON(r, "GET", "/api/v1/projects", "", "short")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("expired-looking token", func(t *testing.T) {
		rr := doJSON(r, "GET", "/api/v1/projects", "", "mock_jwt_expired_abc123")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("valid token passes", func(t *testing.T) {
		rr := doJSON(r, "GET", "/api/v1/projects", "", testToken)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestCreateProject(t *testing.T) {
	t.Run("201 with full record", func(t *testing.T) {
		r := setupRouter()

		rr := doJSON(r, "POST", "/api/v1/projects", `{"name":"Foo","description":"bar"}`, testToken)
		require.Equal(t, http.StatusCreated, rr.Code)

		var p domain.Project
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &p))
		assert.NotEmpty(t, p.ID)
		assert.Equal(t, "Foo", p.Name)
		require.NotNil(t, p.Description)
		assert.Equal(t, "bar", *p.Description)
		assert.Equal(t, p.CreatedAt, p.UpdatedAt)
	})

	t.Run("duplicate name yields 409, any case", func(t *testing.T) {
		r := setupRouter()

		rr := doJSON(r, "POST", "/api/v1/projects", `{"name":"Foo"}`, testToken)
		require.Equal(t, http.StatusCreated, rr.Code)

		rr = doJSON(r, "POST", "/api/v1/projects", `{"name":"Foo"}`, testToken)
		assert.Equal(t, http.StatusConflict, rr.Code)

		rr = doJSON(r, "POST", "/api/v1/projects", `{"name":"FOO"}`, testToken)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("empty description normalises to null", func(t *testing.T) {
		r := setupRouter()

		rr := doJSON(r, "POST", "/api/v1/projects", `{"name":"Foo","description":"  "}`, testToken)
		require.Equal(t, http.StatusCreated, rr.Code)

		var p domain.Project
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &p))
		assert.Nil(t, p.Description)
	})

	t.Run("validation failures use field-error shape", func(t *testing.T) {
		r := setupRouter()

		for name, body := range map[string]string{
			"empty name":           `{"name":"   "}`,
			"name too long":        fmt.Sprintf(`{"name":%q}`, strings.Repeat("x", 256)),
			"description too long": fmt.Sprintf(`{"name":"ok","description":%q}`, strings.Repeat("y", 1001)),
		} {
			t.Run(name, func(t *testing.T) {
				rr := doJSON(r, "POST", "/api/v1/projects", body, testToken)
				require.Equal(t, http.StatusBadRequest, rr.Code)

				var resp struct {
					Detail []fieldError `json:"detail"`
				}
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				require.NotEmpty(t, resp.Detail)
				assert.Equal(t, "body", resp.Detail[0].Loc[0])
			})
		}
	})

	t.Run("malformed body yields 400", func(t *testing.T) {
		r := setupRouter()

		rr := doJSON(r, "POST", "/api/v1/projects", `{not json`, testToken)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestListProjects(t *testing.T) {
	seed := func(t *testing.T, r *gin.Engine, n int) {
		t.Helper()
		for i := 1; i <= n; i++ {
			rr := doJSON(r, "POST", "/api/v1/projects",
				fmt.Sprintf(`{"name":"Project %d"}`, i), testToken)
			require.Equal(t, http.StatusCreated, rr.Code)
		}
	}

	decode := func(t *testing.T, rr *httptest.ResponseRecorder) listResponse {
		t.Helper()
		var resp listResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		return resp
	}

	t.Run("second page of six with size two", func(t *testing.T) {
		r := setupRouter()
		seed(t, r, 6)

		rr := doJSON(r, "GET", "/api/v1/projects?page=2&size=2", "", testToken)
		require.Equal(t, http.StatusOK, rr.Code)

		resp := decode(t, rr)
		assert.Equal(t, 6, resp.Total)
		assert.Equal(t, 3, resp.Pages)
		assert.Equal(t, 2, resp.Page)
		assert.Equal(t, 2, resp.Size)
		require.Len(t, resp.Projects, 2)
		assert.Equal(t, "Project 4", resp.Projects[0].Name)
		assert.Equal(t, "Project 3", resp.Projects[1].Name)
	})

	t.Run("search filters before paginating", func(t *testing.T) {
		r := setupRouter()
		seed(t, r, 12)

		// "Project 1" matches 1, 10, 11, 12.
		rr := doJSON(r, "GET", "/api/v1/projects?search=Project+1&size=3", "", testToken)
		require.Equal(t, http.StatusOK, rr.Code)

		resp := decode(t, rr)
		assert.Equal(t, 4, resp.Total)
		assert.Equal(t, 2, resp.Pages)
		assert.Len(t, resp.Projects, 3)
	})

	t.Run("empty store", func(t *testing.T) {
		r := setupRouter()

		rr := doJSON(r, "GET", "/api/v1/projects", "", testToken)
		require.Equal(t, http.StatusOK, rr.Code)

		resp := decode(t, rr)
		assert.Equal(t, 0, resp.Total)
		assert.Equal(t, 0, resp.Pages)
		assert.Empty(t, resp.Projects)
	})

	t.Run("invalid paging params yield 400", func(t *testing.T) {
		r := setupRouter()

		for _, q := range []string{"page=0", "page=abc", "size=0", "size=101", "size=-1"} {
			rr := doJSON(r, "GET", "/api/v1/projects?"+q, "", testToken)
			assert.Equal(t, http.StatusBadRequest, rr.Code, q)
		}
	})
}
