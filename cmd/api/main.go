package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/telcharge/telcharge-api/internal/config"
	"github.com/telcharge/telcharge-api/internal/domain/account"
	"github.com/telcharge/telcharge-api/internal/domain/auth"
	"github.com/telcharge/telcharge-api/internal/domain/credit"
	"github.com/telcharge/telcharge-api/internal/domain/phone"
	"github.com/telcharge/telcharge-api/internal/domain/sale"
	"github.com/telcharge/telcharge-api/internal/middleware"
	"github.com/telcharge/telcharge-api/internal/pkg/database"
	"github.com/telcharge/telcharge-api/internal/pkg/jwt"
	"github.com/telcharge/telcharge-api/internal/pkg/logger"
	pkgresponse "github.com/telcharge/telcharge-api/internal/pkg/response"
)

func main() {
	cfg := config.Load()
	logger.Init(logger.Config{Level: cfg.LogLevel, Environment: cfg.Env})

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting Telcharge API")

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	redis, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer database.CloseRedis(redis)

	jwtService := jwt.NewService(cfg.JWTSecret, cfg.JWTAccessTTL)

	// ---------- Repositories ----------
	accountRepo := account.NewRepository(db)
	phoneRepo := phone.NewRepository(db)
	creditRepo := credit.NewRepository(db)
	saleRepo := sale.NewRepository(db)

	// ---------- Services ----------
	authService := auth.NewService(accountRepo, jwtService)
	phoneService := phone.NewService(phoneRepo, phone.NewCache(redis))
	creditService := credit.NewService(db, creditRepo, accountRepo)
	saleService := sale.NewService(db, saleRepo, accountRepo, phoneRepo)

	// ---------- Handlers ----------
	authHandler := auth.NewHandler(authService)
	phoneHandler := phone.NewHandler(phoneService)
	creditHandler := credit.NewHandler(creditService)
	saleHandler := sale.NewHandler(saleService)

	authMiddleware := middleware.Auth(jwtService)

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))
	r.Use(chimw.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		pkgresponse.OK(w, map[string]string{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/auth", authHandler.Routes(authMiddleware))
		r.Mount("/phone-numbers", phoneHandler.Routes(authMiddleware))
		r.Mount("/credit-requests", creditHandler.Routes(authMiddleware))
		r.Mount("/charge-sales", saleHandler.Routes(authMiddleware))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}
