// ================== cmd/api/main.go ==================
//
// @title Todo API
// @version 1.0
// @description A RESTful API for managing todos backed by MongoDB
// @host localhost:3000
// @BasePath /api
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/todo-api/docs"
	"github.com/xyz-asif/todo-api/internal/config"
	"github.com/xyz-asif/todo-api/internal/database"
	"github.com/xyz-asif/todo-api/internal/features/todos"
	"github.com/xyz-asif/todo-api/internal/pkg/logger"
	"github.com/xyz-asif/todo-api/internal/pkg/ratelimit"
	"github.com/xyz-asif/todo-api/internal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	logger.Init(cfg.Log.Level, cfg.Log.Format)

	// Outside development, be quiet and skip gin's debug route dump
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	docs.SwaggerInfo.Host = "localhost:" + cfg.HTTP.Port

	deps := routes.Dependencies{Config: cfg}

	var manager *database.Manager
	switch cfg.App.Storage {
	case config.DriverMemory:
		logger.Warn("Using in-memory storage; todos are lost on restart")
		deps.Todos = todos.NewMemoryRepository()
	default:
		manager = database.NewManager(database.Config{
			URI:            cfg.Mongo.URI,
			DBName:         cfg.Mongo.Database,
			ConnectTimeout: cfg.Mongo.ConnectTimeout,
			MaxPool:        cfg.Mongo.MaxPool,
			MinPool:        cfg.Mongo.MinPool,
		})
		if _, err := manager.Connect(context.Background()); err != nil {
			logger.Fatal("Failed to start server: %v", err)
		}
		logger.Info("Using MongoDB database %q", manager.DBName())

		repo := todos.NewMongoRepository(manager, cfg.Mongo.OperationTimeout)
		if err := repo.EnsureIndexes(context.Background()); err != nil {
			logger.Warn("Failed to create todo indexes: %v", err)
		}
		deps.Todos = repo
		deps.Store = manager
	}

	stopCleanup := make(chan struct{})
	if cfg.RateLimit.RPS > 0 {
		deps.Limiter = ratelimit.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		deps.Limiter.StartCleanup(time.Minute, stopCleanup)
	}

	router := routes.NewRouter(deps)

	// config server
	srv := &http.Server{
		Addr:         ":" + cfg.HTTP.Port,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		logger.Info("Server is running on http://localhost:%s", cfg.HTTP.Port)
		logger.Info("API endpoints available at http://localhost:%s/api", cfg.HTTP.Port)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown: %v", err)
	}
	close(stopCleanup)

	if manager != nil {
		if err := manager.Close(ctx); err != nil {
			logger.Error("Failed to close MongoDB connection: %v", err)
		}
	}

	logger.Info("Server exited")
}
