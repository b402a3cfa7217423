package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"coinmarket-service/internal/application"
	"coinmarket-service/internal/bootstrap"
	"coinmarket-service/internal/config"
	"coinmarket-service/internal/infrastructure/logx"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() { _ = godotenv.Load() }

func main() {
	ctx := context.Background()
	log := logx.L()
	cfg := config.Load()

	kv, cleanup, err := bootstrap.BuildKV(ctx, cfg)
	if err != nil {
		log.Fatal("bootstrap kv", zap.Error(err))
	}
	defer cleanup()

	stores, err := bootstrap.BuildStores(ctx, kv)
	if err != nil {
		log.Fatal("bootstrap stores", zap.Error(err))
	}

	markets := bootstrap.BuildMarketService(cfg, bootstrap.BuildMarketClient(cfg), stores.Rates)
	fiat := application.NewFiatTable()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	poller := bootstrap.BuildPoller(cfg, markets, fiat, bootstrap.BuildFiatSource(cfg))
	poller.Start(runCtx)
	defer poller.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("poller stopped")
}
