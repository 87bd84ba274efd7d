package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mfsociety12/Dokal-test-gest/internal/api"
	"github.com/mfsociety12/Dokal-test-gest/internal/config"
	"github.com/mfsociety12/Dokal-test-gest/internal/data/memory"
	"github.com/mfsociety12/Dokal-test-gest/internal/engine"
	"github.com/mfsociety12/Dokal-test-gest/internal/logger"
	"github.com/mfsociety12/Dokal-test-gest/internal/service"
)

func main() {
	appCtx, cancelAppCtx := context.WithCancel(context.Background())
	defer cancelAppCtx()

	cfg, err := config.LoadConfig("server")
	if err != nil {
		// logger is not initialized yet, so we use fmt
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(cfg)

	// In-memory stores; everything is lost on restart
	clientRepo := memory.NewClientRepository()
	accountRepo := memory.NewAccountRepository()
	ledgerRepo := memory.NewLedgerRepository()
	locks := engine.NewAccountLocks()

	if cfg.Application.SeedDemoData {
		if err := memory.SeedDemoData(appCtx, log, clientRepo, accountRepo, ledgerRepo); err != nil {
			log.Error("Failed to seed demo data", "error", err)
			os.Exit(1)
		}
	}

	transactionEngine := engine.New(log, &cfg.Ledger, accountRepo, ledgerRepo, locks)

	clientService := service.NewClientService(log, clientRepo, accountRepo)
	accountService := service.NewAccountService(log, accountRepo, clientRepo, locks)

	server := api.NewServer(log, cfg, clientService, accountService, transactionEngine)
	log.Info("REST server initialized")

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Server.Port)
		if err := server.Start(); err != nil {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case <-quit:
		log.Info("Shutdown signal received")
	case err := <-errChan:
		log.Error("Server error occurred", "error", err)
	}

	cancelAppCtx()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Stop(shutdownCtx); err != nil {
		log.Error("Error during server shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("Server shutdown completed successfully")
}
