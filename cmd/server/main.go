package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/bookkeeper/internal/server"
	"github.com/iudanet/bookkeeper/internal/server/jwt"
	"github.com/iudanet/bookkeeper/internal/server/storage"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Parse flags
	showVersion := flag.Bool("version", false, "Show version information")
	envFile := flag.String("env", ".env", "Path to .env file (ignored if missing)")
	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if err := run(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(envFile string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	v, err := loadConfig(envFile)
	if err != nil {
		return err
	}

	logger, err := newLogger(v, os.Stderr)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	secret, err := jwtSecret(v, logger)
	if err != nil {
		return err
	}

	books, err := openStorage(ctx, v, logger)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := books.Close(); err != nil {
			logger.Error("Failed to close storage", "error", err)
		}
	}()

	users, err := storage.NewDirectory(storage.DemoAccounts, 0)
	if err != nil {
		return fmt.Errorf("failed to build user directory: %w", err)
	}

	tokens := jwt.NewService(secret, v.GetDuration(cfgKeyTokenTTL))

	srv := server.New(serverConfig(v), logger, books, users, tokens)
	return srv.Run(ctx)
}

func printVersion() {
	fmt.Printf("Bookkeeper Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
