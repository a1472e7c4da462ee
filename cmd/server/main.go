package main

import (
	"Nuremento/internal/clock"
	"Nuremento/internal/config"
	"Nuremento/internal/handlers"
	"Nuremento/internal/middleware"
	"Nuremento/internal/repo"
	"Nuremento/internal/service"
	"Nuremento/internal/storage"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		sugar.Fatalw("invalid TIMEZONE", "timezone", cfg.Timezone, "error", err)
	}
	clk := clock.NewSystem(loc)

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	// без бакета сервер работает, но загрузка фото отключена
	var images service.ImageStore
	if cfg.S3Bucket != "" {
		s3Storage, err := storage.NewS3Storage(ctx, cfg.S3Bucket, cfg.S3Region, cfg.S3Endpoint)
		if err != nil {
			sugar.Fatalw("failed to initialize image storage", "error", err)
		}
		images = s3Storage
	} else {
		sugar.Warnw("AWS_BUCKET_NAME is empty, memory photos are disabled")
	}

	memoryRepo := repo.NewMemoryRepository(gormDB)
	lakeRepo := repo.NewLakeNoteRepository(gormDB)

	svc := handlers.Services{
		Daily:    service.NewDailyService(memoryRepo, lakeRepo, repo.NewDailyPickRepository(gormDB), clk, sugar),
		Memories: service.NewMemoryService(memoryRepo, images, clk, sugar, cfg.ImageMaxBytes()),
		Lake:     service.NewLakeService(lakeRepo, clk, sugar),
		Capsules: service.NewCapsuleService(repo.NewCapsuleRepository(gormDB), clk, sugar, cfg.BurnOnOpen()),
	}

	h := handlers.NewHandler(svc, sugar, cfg)

	srv := &http.Server{
		Addr:              cfg.BaseURL,
		Handler:           h.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	sugar.Infow("Starting server",
		"addr", cfg.BaseURL,
		"timezone", loc.String(),
		"capsule_open_mode", cfg.CapsuleOpenMode,
		"images", images != nil,
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("Server failed", "error", err)
		}
	}()

	<-ctx.Done()
	sugar.Infow("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("graceful shutdown failed", "error", err)
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
