// Package main runs the TRON address info service: an HTTP API that
// looks up account balance, bandwidth and energy from a TRON node and
// keeps a history of lookups in PostgreSQL.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"tron-address-service/internal/api"
	"tron-address-service/internal/config"
	"tron-address-service/internal/lookup"
	"tron-address-service/internal/storage"
	"tron-address-service/internal/storage/memory"
	"tron-address-service/internal/storage/migrations"
	pgstore "tron-address-service/internal/storage/postgres"
	"tron-address-service/internal/tron"
)

func main() {
	// Load .env file if exists
	loadEnvFile()

	cfg := config.Load()

	// Parse flags (env vars as defaults)
	listenAddr := flag.String("listen-addr", cfg.Server.Addr, "HTTP listen address")
	nodeURL := flag.String("tron-node", cfg.Tron.NodeURL, "TRON node HTTP endpoint")
	apiKey := flag.String("tron-api-key", cfg.Tron.APIKey, "TronGrid API key (optional)")
	postgresDSN := flag.String("postgres-dsn", "", "PostgreSQL connection string (overrides POSTGRES_* variables)")
	useMemory := flag.Bool("use-memory", false, "Use in-memory storage instead of PostgreSQL")
	writeRequired := flag.Bool("write-required", false, "Fail lookups when the history write fails")

	flag.Parse()

	// Setup logger
	logger := log.New(os.Stdout, "[server] ", log.LstdFlags|log.Lshortfile)

	if *nodeURL == "" {
		logger.Fatal("--tron-node is required")
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())

	// Create store
	store, cleanup, err := createStore(ctx, *postgresDSN, cfg, *useMemory)
	if err != nil {
		logger.Fatalf("Failed to create store: %v", err)
	}
	defer cleanup()

	// Create TRON session factory
	var clientOpts []tron.ClientOption
	if *apiKey != "" {
		clientOpts = append(clientOpts, tron.WithAPIKey(*apiKey))
	}
	sessions := tron.NewSessionFactory(*nodeURL, clientOpts...)

	writeMode := lookup.WriteBestEffort
	if *writeRequired {
		writeMode = lookup.WriteRequired
	}

	service := lookup.New(lookup.Options{
		Sessions:  sessions,
		Store:     store,
		WriteMode: writeMode,
		Logger:    log.New(os.Stdout, "[lookup] ", log.LstdFlags|log.Lshortfile),
	})

	server := api.NewServer(api.Options{
		Lookups: service,
		Logger:  log.New(os.Stdout, "[api] ", log.LstdFlags|log.Lshortfile),
	})

	// Channel to signal completion
	done := make(chan error, 1)

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Printf("Received signal %v, initiating graceful shutdown...", sig)
		cancel()

		// Wait for second signal for immediate shutdown
		select {
		case sig := <-sigCh:
			logger.Printf("Received second signal %v, forcing immediate shutdown", sig)
			os.Exit(1)
		case <-time.After(30 * time.Second):
			logger.Println("Graceful shutdown timed out after 30s, forcing exit")
			os.Exit(1)
		case <-done:
			// Normal shutdown completed
		}
	}()

	logger.Printf("Using TRON node %s", *nodeURL)
	err = server.Run(ctx, *listenAddr)
	done <- err
	cancel()

	if err != nil && err != context.Canceled {
		logger.Fatalf("Server error: %v", err)
	}

	logger.Println("Shutdown complete")
}

// createStore creates the lookup store, applying migrations for PostgreSQL.
func createStore(ctx context.Context, dsn string, cfg *config.Config, useMemory bool) (storage.LookupStore, func(), error) {
	if useMemory {
		return memory.NewLookupStore(), func() {}, nil
	}

	if dsn == "" {
		dsn = cfg.DB.DSN()
	}

	pool, err := pgstore.NewPool(ctx, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to postgres: %w", err)
	}

	if err := migrations.RunPostgresMigrations(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("apply migrations: %w", err)
	}

	return pgstore.NewLookupStore(pool), pool.Close, nil
}

// loadEnvFile loads environment variables from .env file if it exists.
func loadEnvFile() {
	data, err := os.ReadFile(".env")
	if err != nil {
		return // File doesn't exist, use system env vars
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Don't override existing env vars
		if os.Getenv(key) == "" {
			os.Setenv(key, value)
		}
	}
}
