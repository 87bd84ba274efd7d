package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mfsociety12/Dokal-test-gest/internal/domain/account"
	"github.com/mfsociety12/Dokal-test-gest/internal/domain/client"
	"github.com/mfsociety12/Dokal-test-gest/internal/engine"
)

// Account numbers are random; regenerate on a store collision
const maxNumberAttempts = 5

// AccountServiceImpl implements the AccountService interface
type AccountServiceImpl struct {
	accounts account.Repository
	clients  client.Repository
	locks    *engine.AccountLocks
	logger   *slog.Logger
}

// NewAccountService creates a new account service. It shares the lock
// registry with the transaction engine so a close cannot race a transaction.
func NewAccountService(logger *slog.Logger, accounts account.Repository, clients client.Repository, locks *engine.AccountLocks) AccountService {
	return &AccountServiceImpl{
		accounts: accounts,
		clients:  clients,
		locks:    locks,
		logger:   logger,
	}
}

// OpenAccount opens a zero-balance account for an existing active client
func (s *AccountServiceImpl) OpenAccount(ctx context.Context, clientID uuid.UUID, accountType account.Type) (*account.Account, error) {
	owner, err := s.clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if !owner.IsActive() {
		return nil, client.ErrClientInactive{ClientID: clientID}
	}

	acc, err := account.NewAccount(clientID, accountType)
	if err != nil {
		return nil, err
	}

	for attempt := 0; ; attempt++ {
		err = s.accounts.Create(ctx, acc)
		if err == nil {
			break
		}
		var dup account.ErrDuplicateNumber
		if !errors.As(err, &dup) || attempt == maxNumberAttempts-1 {
			return nil, err
		}
		acc.Number = account.NewNumber()
	}

	s.logger.Info("account opened",
		"account_id", acc.ID.String(),
		"client_id", clientID.String(),
		"number", acc.Number,
	)
	return acc, nil
}

// GetAccountByID retrieves an account by ID
func (s *AccountServiceImpl) GetAccountByID(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	return s.accounts.GetByID(ctx, id)
}

// ListAccountsByClient returns all accounts owned by the client
func (s *AccountServiceImpl) ListAccountsByClient(ctx context.Context, clientID uuid.UUID) ([]*account.Account, error) {
	if _, err := s.clients.GetByID(ctx, clientID); err != nil {
		return nil, err
	}
	return s.accounts.ListByClient(ctx, clientID)
}

// CloseAccount closes an active zero-balance account. The account lock is
// taken so the zero-balance check cannot race an in-flight transaction.
func (s *AccountServiceImpl) CloseAccount(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	if _, err := s.accounts.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if !s.locks.TryAcquire(id) {
		return nil, engine.ErrAccountLocked{AccountID: id}
	}
	defer s.locks.Release(id)

	acc, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := acc.Close(); err != nil {
		return nil, err
	}
	if err := s.accounts.UpdateStatus(ctx, id, account.StatusClosed); err != nil {
		return nil, err
	}

	s.logger.Info("account closed", "account_id", id.String())
	return acc, nil
}
