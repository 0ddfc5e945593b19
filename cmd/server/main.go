package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/bugtrack/internal/config"
	"github.com/iudanet/bugtrack/internal/server"
	"github.com/iudanet/bugtrack/internal/server/storage/boltdb"
	"github.com/iudanet/bugtrack/internal/server/storage/sqlite"
	"github.com/iudanet/bugtrack/internal/server/token"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	fs := flag.NewFlagSet("bugtrack-server", flag.ExitOnError)
	showVersion := fs.Bool("version", false, "Show version information")

	cfg, err := config.Load(fs, os.Args[1:])
	if *showVersion {
		printVersion()
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Основное хранилище (пользователи, проекты, тикеты)
	sqlStorage, err := sqlite.New(ctx, cfg.SQLitePath)
	if err != nil {
		return fmt.Errorf("open sqlite storage: %w", err)
	}
	defer func() {
		if err := sqlStorage.Close(); err != nil {
			logger.Error("failed to close sqlite storage", "error", err)
		}
	}()

	// Реестр банов
	banStorage, err := boltdb.New(ctx, cfg.BoltPath)
	if err != nil {
		return fmt.Errorf("open ban registry: %w", err)
	}
	defer func() {
		if err := banStorage.Close(); err != nil {
			logger.Error("failed to close ban registry", "error", err)
		}
	}()

	tokens, err := token.NewService(token.Config{Secret: []byte(cfg.JWTSecret)})
	if err != nil {
		return fmt.Errorf("init token service: %w", err)
	}

	srv := server.New(cfg.Addr, cfg.Env, cfg.FrontendOrigin, logger, sqlStorage.DB(), server.Stores{
		Users:    sqlStorage,
		Projects: sqlStorage,
		Tickets:  sqlStorage,
		Bans:     banStorage,
	}, tokens)

	return srv.Run(ctx)
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func printVersion() {
	fmt.Printf("BugTrack Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
