package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/binarychai/playlist-backend/internal/config"
	"github.com/binarychai/playlist-backend/internal/database"
	"github.com/binarychai/playlist-backend/internal/handler"
	"github.com/binarychai/playlist-backend/internal/imagestore"
	"github.com/binarychai/playlist-backend/internal/logger"
	"github.com/binarychai/playlist-backend/internal/repository"
	"github.com/binarychai/playlist-backend/internal/router"
	"github.com/binarychai/playlist-backend/internal/service"
	"github.com/binarychai/playlist-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("env", cfg.Environment).
		Msg("Starting playlist backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Image Store ───────────────────────────────────────────────────
	images, err := imagestore.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize image store")
	}

	// ─── Initialize Repositories ───────────────────────────────────────
	playlistRepo := repository.NewPlaylistRepository(pool)
	quizRepo := repository.NewQuizRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	adminRepo := repository.NewAdminRepository(pool)

	// ─── Initialize Services ───────────────────────────────────────────
	authService := service.NewAuthService(cfg)
	adminService := service.NewAdminService(adminRepo, authService, log)
	playlistService := service.NewPlaylistService(playlistRepo, log)
	quizService := service.NewQuizService(quizRepo)
	userService := service.NewUserService(userRepo)
	uploadService := service.NewUploadService(images, log)

	// ─── Initialize Handlers ───────────────────────────────────────────
	handlers := &router.Handlers{
		Playlist: handler.NewPlaylistHandler(playlistService, uploadService),
		Quiz:     handler.NewQuizHandler(quizService),
		User:     handler.NewUserHandler(userService),
		Admin:    handler.NewAdminHandler(adminService, authService, cfg),
		Upload:   handler.NewUploadHandler(uploadService),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, rdb, cfg, log)

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
