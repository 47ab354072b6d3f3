package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/thangpham393/chinese-vocabulary-learning/internal/api"
	"github.com/thangpham393/chinese-vocabulary-learning/internal/client"
	"github.com/thangpham393/chinese-vocabulary-learning/internal/config"
	"github.com/thangpham393/chinese-vocabulary-learning/internal/repository"
	"github.com/thangpham393/chinese-vocabulary-learning/internal/seed"
	"github.com/thangpham393/chinese-vocabulary-learning/internal/service"
	"github.com/thangpham393/chinese-vocabulary-learning/internal/storage/cache"
	"github.com/thangpham393/chinese-vocabulary-learning/internal/storage/db"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)

	localCache, err := cache.Open(cfg.Cache.Path, logger)
	if err != nil {
		logger.Fatal("failed open local cache", zap.Error(err))
	}
	defer localCache.Close()

	// The remote store only joins the wiring when its credentials are
	// present; without it every call routes to the local cache.
	var repo service.RepositoryI
	if cfg.DB.Configured() {
		conn, err := db.InitDB(cfg.DB)
		if err != nil {
			logger.Fatal("failed init db", zap.Error(err))
		}
		defer conn.Close()
		repo = repository.NewRepository(conn)
	} else {
		logger.Warn("remote store not configured, running on local cache only")
	}

	// Same deal for Gemini: without an API key no client exists and the AI
	// operations report themselves unavailable instead of dialing out.
	var apiClient service.APII
	if cfg.Gemini.Configured() {
		apiClient = client.InitClients(cfg.Gemini)
	} else {
		logger.Warn("gemini not configured, smart import and media are unavailable")
	}

	seeds := seed.NewStore()
	services := service.InitServices(apiClient, repo, localCache, seeds, logger)

	server := &http.Server{
		Addr:    cfg.App.Addr,
		Handler: api.NewServer(services, seeds, cfg.App.Timeout, logger),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed graceful shutdown", zap.Error(err))
	}
}
