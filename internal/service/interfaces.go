package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/mfsociety12/Dokal-test-gest/internal/domain/account"
	"github.com/mfsociety12/Dokal-test-gest/internal/domain/client"
	"github.com/mfsociety12/Dokal-test-gest/internal/domain/ledger"
	"github.com/mfsociety12/Dokal-test-gest/internal/engine"
)

// ClientService defines the interface for client lifecycle operations
type ClientService interface {
	// CreateClient registers a new active client after validating identity fields
	CreateClient(ctx context.Context, lastName, firstName, phone, email, address string) (*client.Client, error)

	// GetClientByID retrieves a client by ID
	// Returns ErrClientNotFound if the client doesn't exist
	GetClientByID(ctx context.Context, id uuid.UUID) (*client.Client, error)

	// ListClients returns clients matching the status filter
	ListClients(ctx context.Context, filter client.StatusFilter) ([]*client.Client, error)

	// UpdateClient applies the provided mutable fields to an existing client
	UpdateClient(ctx context.Context, id uuid.UUID, update client.Update) (*client.Client, error)

	// DeactivateClient soft-deletes a client
	// Returns ErrHasActiveAccounts while the client still owns active accounts
	DeactivateClient(ctx context.Context, id uuid.UUID) error
}

// AccountService defines the interface for account lifecycle operations
type AccountService interface {
	// OpenAccount opens a zero-balance account for an existing active client
	OpenAccount(ctx context.Context, clientID uuid.UUID, accountType account.Type) (*account.Account, error)

	// GetAccountByID retrieves an account by ID
	// Returns ErrAccountNotFound if the account doesn't exist
	GetAccountByID(ctx context.Context, id uuid.UUID) (*account.Account, error)

	// ListAccountsByClient returns all accounts owned by the client
	ListAccountsByClient(ctx context.Context, clientID uuid.UUID) ([]*account.Account, error)

	// CloseAccount closes an active zero-balance account. Closing is terminal.
	// Returns ErrNonZeroBalance while funds remain, ErrAccountLocked while a
	// transaction holds the account.
	CloseAccount(ctx context.Context, id uuid.UUID) (*account.Account, error)
}

// TransactionService defines the interface for money movement and ledger
// reads. The transaction engine is its only implementation.
type TransactionService interface {
	// Deposit credits an account
	Deposit(ctx context.Context, accountID uuid.UUID, amount int64, description string) (*engine.OperationResult, error)

	// Withdraw debits an account
	Withdraw(ctx context.Context, accountID uuid.UUID, amount int64, description string) (*engine.OperationResult, error)

	// Transfer atomically moves funds between two accounts
	Transfer(ctx context.Context, sourceID, destinationID uuid.UUID, amount int64, description string) (*engine.TransferResult, error)

	// History returns an account's transactions, newest first
	History(ctx context.Context, accountID uuid.UUID, limit int) ([]*ledger.Transaction, error)

	// GetTransaction returns a single ledger record by ID
	GetTransaction(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error)
}

var _ TransactionService = (*engine.Engine)(nil)
