package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	httpapi "github.com/sabeelnahmed/bendersdummy/internal/api/http"
	"github.com/sabeelnahmed/bendersdummy/internal/api/http/middleware"
	"github.com/sabeelnahmed/bendersdummy/internal/auth"
	authhttp "github.com/sabeelnahmed/bendersdummy/internal/auth/http"
	"github.com/sabeelnahmed/bendersdummy/internal/auth/sessions"
	"github.com/sabeelnahmed/bendersdummy/internal/legacy"
	projectshttp "github.com/sabeelnahmed/bendersdummy/internal/projects/http"
	"github.com/sabeelnahmed/bendersdummy/internal/projects/repository"
	"github.com/sabeelnahmed/bendersdummy/internal/workflow"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	DB          *pgxpool.Pool
	Redis       *redis.Client
	Sessions    *sessions.Store
	LoginLimit  *rate.Limiter
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	// Allow-all CORS, same posture as the original service.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization", "X-Request-Id"},
	}))
	r.Use(middleware.RequestID())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)
	r.GET("/", httpapi.Index)

	legacy.Register(r, legacy.NewRepo())

	api := r.Group("/api")
	workflow.Register(api)

	v1 := api.Group("/v1")

	authHandler := authhttp.New(dep.Sessions)
	authHandler.Register(v1.Group("/auth"), middleware.RateLimit(dep.LoginLimit))

	projectsGroup := v1.Group("/projects")
	projectsGroup.Use(auth.RequireToken(dep.Sessions))
	projectsHandler := projectshttp.New(repository.NewRepo())
	projectsHandler.Register(projectsGroup)

	return r
}
