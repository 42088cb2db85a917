package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iudanet/qrbox/internal/client/cli"
	"github.com/iudanet/qrbox/internal/client/history"
	"github.com/iudanet/qrbox/internal/client/iocli"
	"github.com/iudanet/qrbox/internal/client/storage/boltdb"
	"github.com/iudanet/qrbox/internal/config"
	"github.com/iudanet/qrbox/internal/notify"
	"github.com/iudanet/qrbox/internal/qrapi"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfg := config.New()

	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	dbPath := flag.String("db", "qrbox-client.db", "Path to local database")
	decodeURL := flag.String("decode-url", cfg.DecodeEndpoint, "QR decode API endpoint")
	encodeURL := flag.String("encode-url", cfg.EncodeEndpoint, "QR encode API endpoint")
	tick := flag.Duration("tick", cfg.TickInterval, "Frame polling interval in scan mode")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	cfg.DecodeEndpoint = *decodeURL
	cfg.EncodeEndpoint = *encodeURL
	cfg.TickInterval = *tick

	stdio := iocli.NewStdio()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	args := flag.Args()
	if len(args) == 0 {
		cli.New(stdio, nil, nil, nil, cfg, logger).PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	// version не требует ни storage, ни сети
	if command == "version" {
		printVersion()
		return
	}

	// Ctrl+C завершает непрерывное сканирование штатно
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	notifications := notify.NewQueue(5 * time.Second)

	historyService := history.NewService(boltStorage, history.Config{
		ScanLimit:    cfg.ScanHistoryLimit,
		GenLimit:     cfg.GenHistoryLimit,
		DedupeWindow: cfg.DedupeWindow,
	}, logger, notifications)

	if err := historyService.Load(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load history: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := historyService.Close(); err != nil {
			logger.Error("failed to flush history", "error", err)
		}
	}()

	codec := qrapi.NewClient(cfg.DecodeEndpoint, cfg.EncodeEndpoint)

	c := cli.New(stdio, codec, historyService, notifications, cfg, logger)

	if err := c.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("QRBox Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
