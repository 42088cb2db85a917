package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iudanet/qrbox/internal/config"
	"github.com/iudanet/qrbox/internal/qrapi"
	"github.com/iudanet/qrbox/internal/server"
	"github.com/iudanet/qrbox/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfg := config.New()

	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", ":8080", "HTTP listen address")
	dbPath := flag.String("db", "qrbox-server.db", "Path to SQLite database")
	decodeURL := flag.String("decode-url", cfg.DecodeEndpoint, "QR decode API endpoint")
	encodeURL := flag.String("encode-url", cfg.EncodeEndpoint, "QR encode API endpoint")
	rateLimit := flag.Int("rate-limit", 30, "Requests per client per rate window")
	rateWindow := flag.Duration("rate-window", time.Minute, "Rate limit window")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	if err := run(logger, cfg, *addr, *dbPath, *decodeURL, *encodeURL, *rateLimit, *rateWindow); err != nil {
		logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(
	logger *slog.Logger,
	cfg *config.Config,
	addr, dbPath, decodeURL, encodeURL string,
	rateLimit int,
	rateWindow time.Duration,
) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	codec := qrapi.NewClient(decodeURL, encodeURL)

	handler := server.NewRouter(logger, server.Config{
		Version:      Version,
		ScanLimit:    cfg.ScanHistoryLimit,
		GenLimit:     cfg.GenHistoryLimit,
		MaxFileSize:  cfg.MaxFileSize,
		DedupeWindow: cfg.DedupeWindow,
		RateLimit:    rateLimit,
		RateWindow:   rateWindow,
	}, server.Deps{
		Decoder: codec,
		Builder: codec,
		Scans:   store,
		Gens:    store,
		DB:      store.DB(),
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting gateway", "addr", addr, "version", Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		logger.Info("shutting down gateway")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("gateway stopped")
	return nil
}

func printVersion() {
	fmt.Printf("QRBox Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
