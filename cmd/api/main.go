package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"coinmarket-service/internal/application"
	"coinmarket-service/internal/bootstrap"
	"coinmarket-service/internal/config"
	infraconfig "coinmarket-service/internal/infrastructure/config"
	httpserver "coinmarket-service/internal/infrastructure/http"
	"coinmarket-service/internal/infrastructure/logx"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() { _ = godotenv.Load() }

func main() {
	ctx := context.Background()
	logger := logx.L()
	cfg := config.Load()
	addr := ":" + cfg.Port

	kv, cleanup, err := bootstrap.BuildKV(ctx, cfg)
	if err != nil {
		logger.Fatal("bootstrap kv", zap.Error(err))
	}
	defer cleanup()

	stores, err := bootstrap.BuildStores(ctx, kv)
	if err != nil {
		logger.Fatal("bootstrap stores", zap.Error(err))
	}

	markets := bootstrap.BuildMarketService(cfg, bootstrap.BuildMarketClient(cfg), stores.Rates)
	fiat := application.NewFiatTable()
	converter := application.NewConverter(stores.Rates, stores.History, fiat,
		application.WithConverterLogger(logger))

	srv, err := bootstrap.BuildServer(cfg, stores, markets, converter)
	if err != nil {
		logger.Fatal("bootstrap server", zap.Error(err))
	}
	mux := httpserver.NewRouter(srv)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	if cfg.SchedulerEnabled {
		poller := bootstrap.BuildPoller(cfg, markets, fiat, bootstrap.BuildFiatSource(cfg))
		poller.Start(runCtx)
		defer poller.Stop()
	}

	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		logger.Info("server started", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	shutdownCtx, shCancel := context.WithTimeout(context.Background(), infraconfig.DefaultShutdownTimeout)
	defer shCancel()
	_ = server.Shutdown(shutdownCtx)
	logger.Info("server stopped")
}
