package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Pangolin1100/class-order-system/config"
	"github.com/Pangolin1100/class-order-system/internal/api"
	"github.com/Pangolin1100/class-order-system/internal/store"
)

func main() {
	// Setup logger
	logger := log.New(os.Stdout, "orderd ", log.LstdFlags)

	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}
	logger.Printf("configuration loaded successfully from %s", configPath)

	// The review and menu-edit pages are gated behind this token.
	if cfg.Admin.Token == "" {
		logger.Fatalf("admin.token must be configured. Please set it in your config file.")
	}

	// Initialize the file stores
	menuStore := store.NewConfigStore(cfg.Store.MenuFile)
	ledger := store.NewLedger(cfg.Store.OrderFile)
	logger.Printf("stores initialized (menu=%s orders=%s)", cfg.Store.MenuFile, cfg.Store.OrderFile)

	// Initialize router
	router := api.NewRouter(cfg, menuStore, ledger)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start the server in a goroutine
	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	// Setup signal handling for graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	// Block until a signal is received.
	<-stop
	logger.Println("Shutdown signal received, stopping server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	logger.Println("Server gracefully stopped")
}
