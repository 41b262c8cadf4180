package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"scoutline-backend/config"
	_ "scoutline-backend/docs" // Important for Swagger
	v1 "scoutline-backend/internal/delivery/http/v1"
	"scoutline-backend/internal/repository/postgres"
	"scoutline-backend/internal/usecase"
	"scoutline-backend/internal/worker"
	"scoutline-backend/pkg/auth"
	"scoutline-backend/pkg/database"
	"scoutline-backend/pkg/identity"
	"scoutline-backend/pkg/logger"
	"scoutline-backend/pkg/redis"

	"github.com/go-playground/validator/v10"
)

// @title           Scoutline Backend API
// @version         1.0
// @description     Backend for the football recruitment platform. Clubs register and post player vacancies.
// @host            localhost:8080
// @BasePath        /api
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
	logger.Log.Info("Starting scoutline backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting falls back to in-memory when absent)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting uses in-memory fallback", "error", err)
	} else {
		defer redis.Close()
	}

	// 5. Setup Repositories
	clubRepo := postgres.NewClubRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)

	// 6. Setup Identity Provider client
	identityClient := identity.NewClient(cfg.ClerkAPIURL, cfg.ClerkSecretKey)

	// 7. Setup UseCases
	validate := validator.New()
	clubUC := usecase.NewClubUsecase(clubRepo, validate)
	jobUC := usecase.NewJobUsecase(jobRepo, clubRepo, validate)
	dashboardUC := usecase.NewDashboardUsecase(jobRepo, clubRepo)
	identityUC := usecase.NewIdentityUsecase(identityClient)

	// 8. Setup Auth Provider (JWKS)
	jwksProvider := auth.NewProvider(cfg.ClerkJWKSURL)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ClubUC:       clubUC,
		JobUC:        jobUC,
		DashboardUC:  dashboardUC,
		IdentityUC:   identityUC,
		JWKSProvider: jwksProvider,
		Config:       cfg,
	})

	// 10. Background expiry sweep
	sweepCtx, cancelSweep := context.WithCancel(context.Background())
	sweeper := worker.NewExpirySweeper(jobRepo, clubRepo, cfg.ExpirySweepSpec)
	if err := sweeper.Start(sweepCtx); err != nil {
		logger.Log.Error("Failed to start expiry sweeper", "error", err)
		os.Exit(1)
	}

	// 11. Start Server
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

	cancelSweep()
	sweeper.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
