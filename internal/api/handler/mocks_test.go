package handler

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mfsociety12/Dokal-test-gest/internal/domain/account"
	"github.com/mfsociety12/Dokal-test-gest/internal/domain/client"
	"github.com/mfsociety12/Dokal-test-gest/internal/domain/ledger"
	"github.com/mfsociety12/Dokal-test-gest/internal/engine"
	"github.com/mfsociety12/Dokal-test-gest/internal/service"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) CreateClient(ctx context.Context, lastName, firstName, phone, email, address string) (*client.Client, error) {
	args := m.Called(ctx, lastName, firstName, phone, email, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Client), args.Error(1)
}

func (m *MockClientService) GetClientByID(ctx context.Context, id uuid.UUID) (*client.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Client), args.Error(1)
}

func (m *MockClientService) ListClients(ctx context.Context, filter client.StatusFilter) ([]*client.Client, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*client.Client), args.Error(1)
}

func (m *MockClientService) UpdateClient(ctx context.Context, id uuid.UUID, update client.Update) (*client.Client, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Client), args.Error(1)
}

func (m *MockClientService) DeactivateClient(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) OpenAccount(ctx context.Context, clientID uuid.UUID, accountType account.Type) (*account.Account, error) {
	args := m.Called(ctx, clientID, accountType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockAccountService) ListAccountsByClient(ctx context.Context, clientID uuid.UUID) ([]*account.Account, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*account.Account), args.Error(1)
}

func (m *MockAccountService) CloseAccount(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) Deposit(ctx context.Context, accountID uuid.UUID, amount int64, description string) (*engine.OperationResult, error) {
	args := m.Called(ctx, accountID, amount, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*engine.OperationResult), args.Error(1)
}

func (m *MockTransactionService) Withdraw(ctx context.Context, accountID uuid.UUID, amount int64, description string) (*engine.OperationResult, error) {
	args := m.Called(ctx, accountID, amount, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*engine.OperationResult), args.Error(1)
}

func (m *MockTransactionService) Transfer(ctx context.Context, sourceID, destinationID uuid.UUID, amount int64, description string) (*engine.TransferResult, error) {
	args := m.Called(ctx, sourceID, destinationID, amount, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*engine.TransferResult), args.Error(1)
}

func (m *MockTransactionService) History(ctx context.Context, accountID uuid.UUID, limit int) ([]*ledger.Transaction, error) {
	args := m.Called(ctx, accountID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ledger.Transaction), args.Error(1)
}

func (m *MockTransactionService) GetTransaction(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Transaction), args.Error(1)
}

var _ service.ClientService = (*MockClientService)(nil)
var _ service.AccountService = (*MockAccountService)(nil)
var _ service.TransactionService = (*MockTransactionService)(nil)
