package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/vocapture/vocapture/internal/artifact"
	"github.com/vocapture/vocapture/internal/capture"
	"github.com/vocapture/vocapture/internal/config"
	"github.com/vocapture/vocapture/internal/console"
	"github.com/vocapture/vocapture/internal/notify"
	"github.com/vocapture/vocapture/internal/service"
	"github.com/vocapture/vocapture/internal/storage/cache"
	"github.com/vocapture/vocapture/internal/storage/db"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
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
	defer logger.Sync()

	database, err := db.InitDB(cfg.Paths, cfg.DB)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}
	defer database.Close()

	store := service.NewStore(database)

	artifacts, err := artifact.NewStore(cfg.Paths, cfg.Variants, logger)
	if err != nil {
		logger.Fatal("failed init audio store", zap.Error(err))
	}

	notifier := notify.NewClient(cfg.Notify, logger)
	services := service.InitServices(store, artifacts, notifier, cfg, logger)
	sessionCache := cache.NewCache()

	factory := func() (service.RecorderI, func(), error) {
		source, err := capture.NewPortAudioSource(cfg.Audio)
		if err != nil {
			return nil, nil, err
		}
		closeSource := func() {
			if err := source.Close(); err != nil {
				logger.Warn("failed to close audio device", zap.Error(err))
			}
		}
		return capture.NewRecorder(cfg.Audio, source, logger), closeSource, nil
	}

	coordinator := service.NewCaptureCoordinator(services.RecordingS, notifier,
		sessionCache, factory, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	go services.MaintenanceS.RunStartupTasks(ctx)

	ui := console.NewConsole(os.Stdin, os.Stdout, coordinator, services.ReviewS, logger)

	// The command server shares its port with a companion UI; when the UI
	// already holds it, inbound commands simply go to the UI instead.
	server, err := notify.NewServer(cfg.Notify, notify.Handler{
		OnRefresh: func() {
			ui.RefreshActive(ctx)
		},
		OnPlay: func(number int64, _ int) {
			sessionCache.SetPlayback(number)
		},
		OnStop: func() {
			sessionCache.ClearPlayback()
			coordinator.StopCurrent()
		},
	}, logger)
	if err != nil {
		logger.Warn("command server disabled", zap.Error(err))
	} else {
		g.Go(func() error {
			return server.Run(ctx)
		})
	}

	g.Go(func() error {
		defer stop()
		return ui.Run(ctx)
	})

	if err := g.Wait(); err != nil && ctx.Err() == nil {
		logger.Fatal("shutting down after error", zap.Error(err))
	}

	logger.Info("bye")
}
