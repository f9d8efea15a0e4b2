package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Ometeor-Zheero-OMZ/gamernage/internal/config"
	"github.com/Ometeor-Zheero-OMZ/gamernage/internal/controller"
	"github.com/Ometeor-Zheero-OMZ/gamernage/internal/middleware"
	"github.com/Ometeor-Zheero-OMZ/gamernage/internal/repository"
	"github.com/Ometeor-Zheero-OMZ/gamernage/internal/service"
	"github.com/Ometeor-Zheero-OMZ/gamernage/internal/utils"
	"github.com/Ometeor-Zheero-OMZ/gamernage/internal/worker"
)

func main() {
	// .env is optional; real deployments set variables directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	zap.L().Info("starting server", zap.String("environment", cfg.Environment))

	// Initialize database
	db, err := utils.InitDB(cfg.DatabaseURL, utils.DBPoolConfig{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxIdleTime: cfg.DBConnMaxIdle,
		ConnMaxLifetime: cfg.DBConnLifetime,
	})
	if err != nil {
		zap.L().Fatal("failed to initialize database", zap.Error(err))
	}
	defer func() {
		if err := utils.CloseDB(db); err != nil {
			zap.L().Error("error closing database", zap.Error(err))
		}
	}()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	todoRepo := repository.NewTodoRepository(db)

	// Initialize email provider
	var emailProvider worker.EmailProvider
	if cfg.Environment == "production" {
		emailProvider = worker.NewSMTPEmailProvider(
			cfg.SMTPHost,
			cfg.SMTPPort,
			cfg.SMTPUser,
			cfg.SMTPPassword,
			cfg.EmailFrom,
		)
	} else {
		emailProvider = worker.NewMockEmailProvider()
	}

	emailPool := worker.NewEmailWorkerPool(
		cfg.EmailWorkerPoolSize,
		cfg.EmailTaskQueueSize,
		emailProvider,
	)
	defer emailPool.Stop()

	// Initialize auth primitives
	hasher := utils.NewPasswordHasher()
	validator := utils.NewValidator()
	tokens := utils.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	// Initialize services
	authService := service.NewAuthService(userRepo, hasher, tokens, validator, emailPool)
	todoService := service.NewTodoService(todoRepo)

	// Initialize cleanup worker
	cleanupWorker := worker.NewCleanupWorker(todoRepo, cfg.CleanupInterval, cfg.TodoRetention)
	cleanupWorker.Start()
	defer cleanupWorker.Stop()

	// Initialize controllers
	authController := controller.NewAuthController(authService, cfg.TokenTTL, cfg.CookieSecure)
	todoController := controller.NewTodoController(todoService, validator)

	// Build the HTTP engine with the middleware chain; authorization runs
	// ahead of every route dispatch
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(
		middleware.Recovery(),
		middleware.RequestLogger(),
		middleware.ErrorHandler(),
		middleware.Authorization(tokens, controller.ExemptPaths),
	)
	controller.RegisterRoutes(engine, authController, todoController)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.HTTPHost, cfg.HTTPPort),
		Handler: engine,
	}

	go func() {
		zap.L().Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("http server error", zap.Error(err))
		}
	}()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	zap.L().Info("shutdown signal received, gracefully shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Error("http server shutdown error", zap.Error(err))
	}

	zap.L().Info("http server stopped")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
