// Package api exposes the ledger over HTTP: a gin router with correlation,
// logging and recovery middleware in front of the client, account and
// transaction handlers.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mfsociety12/Dokal-test-gest/internal/api/handler"
	"github.com/mfsociety12/Dokal-test-gest/internal/config"
	"github.com/mfsociety12/Dokal-test-gest/internal/service"
)

// Server handles HTTP requests and manages the listener's lifecycle
type Server struct {
	logger     *slog.Logger
	httpServer *http.Server
}

// NewServer creates and configures a new HTTP server over the given services
func NewServer(
	log *slog.Logger,
	cfg *config.Config,
	clientService service.ClientService,
	accountService service.AccountService,
	transactionService service.TransactionService,
) *Server {
	if cfg.Application.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	clientHandler := handler.NewClientHandler(log, clientService)
	accountHandler := handler.NewAccountHandler(log, accountService)
	transactionHandler := handler.NewTransactionHandler(log, transactionService)

	setupRouter(log, &cfg.Server, router, clientHandler, accountHandler, transactionHandler)

	return &Server{
		logger: log,
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
			Handler:      router,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		},
	}
}

// Start begins listening for HTTP requests and blocks until the server stops
func (s *Server) Start() error {
	s.logger.Info("HTTP server listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the HTTP server, letting in-flight requests
// finish until the context expires
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("stopping HTTP server")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to stop HTTP server: %w", err)
	}
	return nil
}
