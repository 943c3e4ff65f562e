package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"todo-service/auth"
	cachepackage "todo-service/cache"
	"todo-service/config"
	"todo-service/database"
	"todo-service/handlers"
	"todo-service/services"
	"todo-service/store"

	"github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"
)

// StartServer boots the service and blocks until shutdown.
func StartServer() {
	// Initialize logger
	logger.Init(logger.LoggerConfig{
		CallerKey:  "file",
		TimeKey:    "timestamp",
		CallerSkip: 1,
	})

	logger.Info("Starting Todo Service...")

	cfg := config.Load()

	// Initialize database
	dbConn := database.InitializeDatabase(cfg)
	defer dbConn.Close()

	// Initialize session cache
	sessionCache := cachepackage.InitializeCache(cfg)
	defer sessionCache.Close()

	st := store.New(dbConn)
	sessions := auth.NewSessions(sessionCache, cfg.SessionTTL)

	taskService := services.NewTaskService(st, cfg.AtomicTaskSaves)
	categoryService := services.NewCategoryService(st)
	userService := services.NewUserService(st)

	router := NewRouter(
		handlers.NewTaskHandler(taskService, sessions),
		handlers.NewCategoryHandler(categoryService, sessions),
		handlers.NewAuthHandler(userService, sessions),
	)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Todo Service started", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown failed", zap.Error(err))
	}
	logger.Info("Shutdown complete")
}
