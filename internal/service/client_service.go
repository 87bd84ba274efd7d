package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mfsociety12/Dokal-test-gest/internal/domain/account"
	"github.com/mfsociety12/Dokal-test-gest/internal/domain/client"
)

// ClientServiceImpl implements the ClientService interface
type ClientServiceImpl struct {
	clients  client.Repository
	accounts account.Repository
	logger   *slog.Logger
}

// NewClientService creates a new client service
func NewClientService(logger *slog.Logger, clients client.Repository, accounts account.Repository) ClientService {
	return &ClientServiceImpl{
		clients:  clients,
		accounts: accounts,
		logger:   logger,
	}
}

// CreateClient registers a new active client after validating identity fields
func (s *ClientServiceImpl) CreateClient(ctx context.Context, lastName, firstName, phone, email, address string) (*client.Client, error) {
	c, err := client.NewClient(lastName, firstName, phone, email, address)
	if err != nil {
		return nil, err
	}

	if err := s.clients.Create(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info("client created", "client_id", c.ID.String())
	return c, nil
}

// GetClientByID retrieves a client by ID
func (s *ClientServiceImpl) GetClientByID(ctx context.Context, id uuid.UUID) (*client.Client, error) {
	return s.clients.GetByID(ctx, id)
}

// ListClients returns clients matching the status filter
func (s *ClientServiceImpl) ListClients(ctx context.Context, filter client.StatusFilter) ([]*client.Client, error) {
	return s.clients.List(ctx, filter)
}

// UpdateClient applies the provided mutable fields to an existing client.
// The client's ID and creation date never change.
func (s *ClientServiceImpl) UpdateClient(ctx context.Context, id uuid.UUID, update client.Update) (*client.Client, error) {
	c, err := s.clients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := c.Apply(update); err != nil {
		return nil, err
	}

	if err := s.clients.Update(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info("client updated", "client_id", id.String())
	return c, nil
}

// DeactivateClient soft-deletes a client. A client who still owns active
// accounts cannot be deactivated.
func (s *ClientServiceImpl) DeactivateClient(ctx context.Context, id uuid.UUID) error {
	c, err := s.clients.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !c.IsActive() {
		return client.ErrClientInactive{ClientID: id}
	}

	count, err := s.accounts.CountActiveByClient(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return client.ErrHasActiveAccounts{ClientID: id, Count: count}
	}

	if err := s.clients.UpdateStatus(ctx, id, client.StatusInactive); err != nil {
		return err
	}

	s.logger.Info("client deactivated", "client_id", id.String())
	return nil
}
