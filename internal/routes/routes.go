package routes

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/xyz-asif/todo-api/docs"
	"github.com/xyz-asif/todo-api/internal/config"
	"github.com/xyz-asif/todo-api/internal/features/todos"
	"github.com/xyz-asif/todo-api/internal/middleware"
	"github.com/xyz-asif/todo-api/internal/pkg/logger"
	"github.com/xyz-asif/todo-api/internal/pkg/ratelimit"
	"github.com/xyz-asif/todo-api/internal/pkg/response"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Dependencies are the collaborators the router needs from main.
type Dependencies struct {
	Config  *config.Config
	Todos   todos.Repository
	Store   Pinger // nil means always ready
	Limiter *ratelimit.RateLimiter
}

// NewRouter builds the gin engine with global middleware and every route.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	// ClientIP keys the rate limiter, so forwarded headers count only from known proxies.
	if err := router.SetTrustedProxies(deps.Config.HTTP.TrustedProxies); err != nil {
		logger.Warn("Ignoring trusted proxies: %v", err)
		_ = router.SetTrustedProxies(nil)
	}
	router.NoRoute(middleware.NoRoute)
	router.NoMethod(middleware.NoMethod)

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS(deps.Config.App.CORSOrigin))
	router.Use(middleware.ErrorHandler(deps.Config.IsDevelopment()))

	SetupRoutes(router, deps)
	return router
}

func SetupRoutes(router *gin.Engine, deps Dependencies) {
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, response.HealthResponse{
			Status:    "ok",
			Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	router.GET("/ready", func(c *gin.Context) {
		if deps.Store != nil {
			if err := deps.Store.Ping(c.Request.Context()); err != nil {
				response.ServiceUnavailable(c, "Database unavailable")
				return
			}
		}
		response.Success(c, gin.H{"status": "ready"})
	})

	router.GET("/metrics", middleware.MetricsHandler())

	router.GET(
		"/swagger/*any",
		ginSwagger.WrapHandler(
			swaggerFiles.Handler,
			ginSwagger.URL("/swagger/doc.json"),
			ginSwagger.DefaultModelsExpandDepth(-1),
			ginSwagger.DocExpansion("list"),
		),
	)

	api := router.Group("/api")
	if deps.Limiter != nil {
		api.Use(ratelimit.Middleware(deps.Limiter))
	}

	todos.RegisterRoutes(api, deps.Todos)
}
