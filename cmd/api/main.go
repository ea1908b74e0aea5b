package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"dreamholidays/api/internal/app"
	"dreamholidays/api/internal/config"
	"dreamholidays/api/internal/content"
	"dreamholidays/api/internal/history"
	"dreamholidays/api/internal/snapshot"
	"dreamholidays/api/internal/store"
	"dreamholidays/api/internal/upload"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	fileStore := store.NewFileStore(cfg.ConfigPath)

	contentOpts := content.Options{Debounce: cfg.SaveDebounce}

	if strings.TrimSpace(cfg.RedisURL) != "" {
		log.Printf("Using Redis snapshot fallback")
		redisStore, err := snapshot.NewRedisStore(cfg.RedisURL)
		if err != nil {
			log.Fatalf("redis connection failed: %v", err)
		}
		defer redisStore.Close()
		contentOpts.Snapshot = redisStore
	}

	var changelog *history.Service
	if strings.TrimSpace(cfg.HistoryDir) != "" {
		svc, err := history.New(cfg.HistoryDir)
		if err != nil {
			log.Fatalf("history repo failed: %v", err)
		}
		log.Printf("Recording config history in %s", cfg.HistoryDir)
		changelog = svc
		contentOpts.Changelog = svc
	}

	contentService := content.New(fileStore, contentOpts)
	contentService.Initialize(ctx)

	uploadOpts := []upload.Option{}
	if cfg.MinioEndpoint != "" && cfg.MinioBucket != "" {
		mirror, err := upload.NewMinioMirror(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
		if err != nil {
			log.Fatalf("minio mirror failed: %v", err)
		}
		log.Printf("Mirroring uploads to bucket %s", cfg.MinioBucket)
		uploadOpts = append(uploadOpts, upload.WithMirror(mirror))
	}
	relay := upload.New(cfg.PublicDir, uploadOpts...)

	var service *app.Service
	if changelog != nil {
		service = app.New(cfg, fileStore, contentService, relay, changelog)
	} else {
		service = app.New(cfg, fileStore, contentService, relay, nil)
	}

	httpServer := app.NewHTTPServer(service, cfg.CORSOrigin)
	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpServer.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Dream Holidays API listening on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}

	// A pending debounced save must land before exit.
	if err := contentService.Flush(shutdownCtx); err != nil {
		log.Printf("final content flush error: %v", err)
	}
}
