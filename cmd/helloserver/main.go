// Package main is the entry point for the greeting server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"helloserver/internal/config"
	"helloserver/internal/logging"
	"helloserver/internal/server"
	"helloserver/internal/system"
	"helloserver/internal/telemetry"
	"helloserver/internal/version"
)

func main() {
	// Load .env file if it exists (for development)
	if err := godotenv.Load(); err != nil {
		// It's okay if .env doesn't exist, especially in production
		if os.Getenv("DEBUG") == "true" {
			logging.Printf("No .env file found or error loading it: %v", err)
		}
	}

	// Handle version flag first, before loading configuration
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-version" || os.Args[1] == "version") {
		versionInfo := version.Get()
		fmt.Printf("helloserver version %s\n", versionInfo.Version)
		fmt.Printf("  commit: %s\n", versionInfo.Commit)
		fmt.Printf("  built: %s\n", versionInfo.BuildDate)
		fmt.Printf("  go: %s\n", versionInfo.GoVersion)
		fmt.Printf("  platform: %s\n", versionInfo.Platform)
		os.Exit(0)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize file logging ONLY in development mode
	if cfg.IsDevelopment() {
		if err := logging.Initialize(cfg.LogDir); err != nil {
			logging.Warning("Failed to initialize file logging: %v", err)
			// Continue with standard logging to stdout
		} else {
			defer logging.Close() //nolint:errcheck // Shutdown cleanup
			logging.Printf("Development logging initialized to %s", cfg.LogDir)

			// Rotate the development log file once a day
			rotator := cron.New()
			if _, err := rotator.AddFunc("@daily", func() {
				if err := logging.RotateLogs(cfg.LogDir); err != nil {
					logging.Warning("Log rotation failed: %v", err)
				}
			}); err != nil {
				logging.Warning("Failed to schedule log rotation: %v", err)
			} else {
				rotator.Start()
				defer rotator.Stop()
			}
		}
	} else {
		// In production, just use stdout (captured by systemd/Docker/etc)
		logging.Printf("Running in production mode - logging to stdout only")
	}

	// Initialize telemetry
	ctx := context.Background()
	shutdownTelemetry, err := telemetry.InitializeFromEnv(ctx)
	if err != nil {
		logging.Warning("Failed to initialize telemetry: %v", err)
		// Continue without telemetry
	} else {
		defer func() {
			if err := shutdownTelemetry(ctx); err != nil {
				logging.Error("Error shutting down telemetry: %v", err)
			}
		}()
	}

	// Log a one-shot host snapshot as part of the startup notification
	if snap, err := system.GetSnapshot(); err != nil {
		logging.Warning("Failed to read host snapshot: %v", err)
	} else {
		logging.Info("Host: %s", snap)
	}

	// Create and start server
	srv := server.New(cfg)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	// Wait for a termination signal or a server failure
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Printf("Received %s, shutting down", sig)

		shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			fmt.Fprintf(os.Stderr, "Shutdown error: %v\n", err)
			os.Exit(1)
		}
		// Drain the start goroutine; a clean shutdown returns nil
		<-errCh

	case err := <-errCh:
		if err != nil {
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			os.Exit(1)
		}
	}
}
