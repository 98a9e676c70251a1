package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/morice333/workstation-queue-dashboard/internal/api"
	"github.com/morice333/workstation-queue-dashboard/internal/core/domain"
	"github.com/morice333/workstation-queue-dashboard/internal/core/service"
	"github.com/morice333/workstation-queue-dashboard/internal/infrastructure/config"
	mongodb "github.com/morice333/workstation-queue-dashboard/internal/infrastructure/db/mongo"
	redisdb "github.com/morice333/workstation-queue-dashboard/internal/infrastructure/db/redis"
	"github.com/morice333/workstation-queue-dashboard/internal/infrastructure/notify"
	"github.com/morice333/workstation-queue-dashboard/internal/infrastructure/queue"
	"github.com/morice333/workstation-queue-dashboard/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        Workstation Queue Dashboard API
// @version      1.0
// @description  Reservation queue and assignment service for shared workstations.
// @BasePath     /
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		// Logger is not up yet.
		panic(err)
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

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	userRepo := mongodb.NewUserRepository(db)
	reservationRepo := mongodb.NewReservationRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user indexes failed")
	}
	if err := reservationRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("reservation indexes failed")
	}

	sessionTTL := 24 * time.Hour
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, sessionTTL)
	seedAccounts(ctx, authService, cfg.Seed, log)

	sender := notify.NewSMTPSender(notify.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		To:       cfg.SMTP.To,
	})
	dispatcher := queue.NewDispatcher(cfg.Notify.Workers, sender, redisdb.NewDedupChecker(rdb), log)
	dispatcher.Start(ctx)

	e := api.NewRouter(db, rdb, api.Options{
		JWTSecret:  cfg.JWTSecret,
		SessionTTL: sessionTTL,
		Notifier:   dispatcher,
		Logger:     log,
	})

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}

// seedAccounts creates the bootstrap accounts when they are configured and
// do not exist yet. Already-existing accounts are left untouched.
func seedAccounts(ctx context.Context, auth *service.AuthService, seed config.SeedConfig, log zerolog.Logger) {
	type account struct {
		username, password, role string
	}
	accounts := []account{
		{seed.AdminUsername, seed.AdminPassword, domain.RoleAdmin},
		{seed.UserUsername, seed.UserPassword, domain.RoleUser},
	}
	for _, a := range accounts {
		if a.username == "" || a.password == "" {
			continue
		}
		if _, err := auth.Register(ctx, a.username, a.password, a.role); err != nil {
			if errors.Is(err, domain.ErrUserExists) {
				continue
			}
			log.Error().Err(err).Str("username", a.username).Msg("seeding account failed")
			continue
		}
		log.Info().Str("username", a.username).Str("role", a.role).Msg("seeded account")
	}
}
