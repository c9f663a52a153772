package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-resume-tracker/config"
	v1 "go-resume-tracker/internal/delivery/http/v1"
	"go-resume-tracker/internal/repository/postgres"
	"go-resume-tracker/internal/usecase"
	"go-resume-tracker/pkg/database"
	"go-resume-tracker/pkg/logger"
	"go-resume-tracker/pkg/redis"
	"go-resume-tracker/pkg/token"
)

// @title           Resume Tracker API
// @version         1.0
// @description     Backend for a resume / job-application tracking service using Clean Architecture.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting resume tracker backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional; rate limiting falls back to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting uses in-memory fallback", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	refreshTokenRepo := postgres.NewRefreshTokenRepository(dbPool)
	resumeRepo := postgres.NewResumeRepository(dbPool)
	resumeLogRepo := postgres.NewResumeLogRepository(dbPool)

	// 6. Setup Token Manager
	tokens := token.NewManager(cfg.AccessTokenSecret, cfg.RefreshTokenSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	// 7. Setup UseCases
	authUC := usecase.NewAuthUsecase(userRepo, refreshTokenRepo, tokens)
	resumeUC := usecase.NewResumeUsecase(resumeRepo)
	statusUC := usecase.NewStatusUsecase(resumeLogRepo)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:   authUC,
		ResumeUC: resumeUC,
		StatusUC: statusUC,
		Tokens:   tokens,
		Config:   cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
