package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"luxestore-be/internal/auth"
	"luxestore-be/internal/catalog"
	"luxestore-be/internal/config"
	"luxestore-be/internal/db"
	"luxestore-be/internal/httpserver"
	"luxestore-be/internal/logger"
	"luxestore-be/internal/order"
	"luxestore-be/internal/review"
	"luxestore-be/internal/state"
	"luxestore-be/internal/user"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	tokens := auth.NewManager(cfg.JWTSecret)

	catalogSvc := catalog.NewService(catalog.NewRepository(database))
	orderSvc := order.NewService(order.NewRepository(database))
	reviewSvc := review.NewService(review.NewRepository(database))
	userSvc := user.NewService(user.NewRepository(database), tokens)

	sessions := state.NewManager(cfg.StateDir)

	srv := httpserver.New(":"+cfg.AppPort, httpserver.Deps{
		Catalog:        catalogSvc,
		Orders:         orderSvc,
		Reviews:        reviewSvc,
		Users:          userSvc,
		Sessions:       sessions,
		Tokens:         tokens,
		Ping:           database.PingContext,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	go func() {
		logger.L().Info("server listening", zap.String("port", cfg.AppPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.L().Error("graceful shutdown failed", zap.Error(err))
	}
	logger.L().Info("server stopped")
}
