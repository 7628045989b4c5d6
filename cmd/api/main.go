package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/policedept/records-system/internal/api"
	"github.com/policedept/records-system/internal/core/service"
	"github.com/policedept/records-system/internal/infrastructure/config"
	"github.com/policedept/records-system/internal/infrastructure/db/postgres"
	"github.com/policedept/records-system/internal/infrastructure/db/redis"
	"github.com/policedept/records-system/internal/infrastructure/hashing"
	"github.com/policedept/records-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title Police Records API
// @version 1.0
// @description Record management service for police agents and cases.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init(logger.Options{})
		l := logger.Get()
		l.Fatal().Err(err).Msg("loading configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Storage ---
	db, err := postgres.Connect(ctx, cfg.Postgres.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to postgres")
	}
	defer db.Close()

	if err := postgres.Migrate(cfg.Postgres.URL); err != nil {
		log.Fatal().Err(err).Msg("running migrations")
	}
	log.Info().Msg("migrations applied")

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to redis")
	}
	defer rdb.Close()

	// --- Repositories ---
	agentRepo := redis.NewAgentCache(postgres.NewAgentRepository(db), rdb, cfg.Redis.CacheTTL, log)
	caseRepo := postgres.NewCaseRepository(db)
	userRepo := postgres.NewAuthRepository(db)

	// --- Password hashing pool ---
	hashPool := hashing.NewPool(cfg.HashWorkers, cfg.BcryptCost)
	hashPool.Start(ctx)

	// --- Services ---
	svc := api.Services{
		Agents: service.NewAgentService(agentRepo, log),
		Cases:  service.NewCaseService(caseRepo, agentRepo, log),
		Auth:   service.NewAuthService(userRepo, hashPool, cfg.JWTSecret, cfg.TokenTTL, log),
	}

	e := api.NewRouter(svc, db, rdb, cfg.JWTSecret, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
