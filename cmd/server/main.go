package main

import (
	"context"
	"database/sql"
	"errors"
	stdhttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	handler "github.com/ken122189/backend-P7/internal/adapters/handler/http"
	repo "github.com/ken122189/backend-P7/internal/adapters/repository/postgres"
	"github.com/ken122189/backend-P7/internal/adapters/security"
	"github.com/ken122189/backend-P7/internal/adapters/token"
	"github.com/ken122189/backend-P7/internal/config"
	"github.com/ken122189/backend-P7/internal/core/services"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	db, err := sql.Open("postgres", cfg.DBConnString())
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelPing()
	if err := db.PingContext(pingCtx); err != nil {
		logger.Fatal("failed to reach database", zap.Error(err))
	}

	codec, err := token.NewCodec(token.Config{
		AccessSecret:  []byte(cfg.AccessTokenSecret),
		AccessTTL:     cfg.AccessTokenExpiry,
		RefreshSecret: []byte(cfg.RefreshTokenSecret),
		RefreshTTL:    cfg.RefreshTokenExpiry,
	})
	if err != nil {
		logger.Fatal("invalid token configuration", zap.Error(err))
	}

	hasher := security.NewBcryptHasher()
	userRepo := repo.NewUserRepository(db)
	positionRepo := repo.NewPositionRepository(db)

	authService := services.NewAuthService(userRepo, codec, hasher, logger)
	userService := services.NewUserService(userRepo, hasher)
	positionService := services.NewPositionService(positionRepo)

	router := handler.NewHandler(
		handler.NewAuthHandler(authService),
		handler.NewUserHandler(userService),
		handler.NewPositionHandler(positionService),
		codec,
		cfg.AllowedOrigins,
		logger,
	)

	server := &stdhttp.Server{Addr: cfg.HTTPAddr, Handler: router}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening", zap.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("shutdown failed", zap.Error(err))
	}
}
