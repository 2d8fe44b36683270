package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/weiheng-lim/gamehub-be/internal/config"
	"github.com/weiheng-lim/gamehub-be/internal/logging"
	"github.com/weiheng-lim/gamehub-be/internal/server"
	"github.com/weiheng-lim/gamehub-be/internal/storage"
	mysqlstore "github.com/weiheng-lim/gamehub-be/internal/storage/mysql"
	"github.com/weiheng-lim/gamehub-be/internal/storage/postgres"
)

func main() {
	loadLocalEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := logging.Default()

	ctx := context.Background()
	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}
	defer store.Close()

	srv := server.New(cfg, store, logger)

	go func() {
		logger.Info(ctx, "gamehub backend listening", "addr", cfg.HTTPAddress(), "driver", cfg.DBDriver)
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Error(ctx, "graceful shutdown error", "error", err)
	}
}

func openStore(ctx context.Context, cfg config.Config) (storage.Store, error) {
	if cfg.DBDriver == config.DriverMySQL {
		return mysqlstore.New(ctx, cfg.DatabaseURL, cfg.DBTimeout)
	}
	return postgres.New(ctx, cfg.DatabaseURL, cfg.DBTimeout)
}

func loadLocalEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found; relying on existing environment")
	}
}
