package service

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mfsociety12/Dokal-test-gest/internal/domain/account"
	"github.com/mfsociety12/Dokal-test-gest/internal/domain/client"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) Create(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepository) GetByID(ctx context.Context, id uuid.UUID) (*client.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Client), args.Error(1)
}

func (m *MockClientRepository) List(ctx context.Context, filter client.StatusFilter) ([]*client.Client, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*client.Client), args.Error(1)
}

func (m *MockClientRepository) Update(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status client.Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(ctx context.Context, acc *account.Account) error {
	args := m.Called(ctx, acc)
	return args.Error(0)
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockAccountRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*account.Account, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*account.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateBalance(ctx context.Context, id uuid.UUID, balance int64) error {
	args := m.Called(ctx, id, balance)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status account.Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockAccountRepository) CountActiveByClient(ctx context.Context, clientID uuid.UUID) (int, error) {
	args := m.Called(ctx, clientID)
	return args.Int(0), args.Error(1)
}

var _ client.Repository = (*MockClientRepository)(nil)
var _ account.Repository = (*MockAccountRepository)(nil)
