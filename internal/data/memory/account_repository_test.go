package memory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mfsociety12/Dokal-test-gest/internal/domain/account"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAccount(t *testing.T, clientID uuid.UUID) *account.Account {
	t.Helper()
	acc, err := account.NewAccount(clientID, account.TypeSavings)
	require.NoError(t, err)
	return acc
}

func TestAccountRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()

	acc := newTestAccount(t, uuid.New())
	require.NoError(t, repo.Create(ctx, acc))

	got, err := repo.GetByID(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, acc.ID, got.ID)
	assert.Equal(t, acc.Number, got.Number)
	assert.Equal(t, int64(0), got.Balance)
}

func TestAccountRepository_GetByID_NotFound(t *testing.T) {
	repo := NewAccountRepository()

	_, err := repo.GetByID(context.Background(), uuid.New())

	require.Error(t, err)
	assert.ErrorIs(t, err, account.ErrAccountNotFound{})
}

func TestAccountRepository_DuplicateNumberRejected(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()

	first := newTestAccount(t, uuid.New())
	require.NoError(t, repo.Create(ctx, first))

	second := newTestAccount(t, uuid.New())
	second.Number = first.Number

	err := repo.Create(ctx, second)
	require.Error(t, err)

	var dupErr account.ErrDuplicateNumber
	assert.ErrorAs(t, err, &dupErr)
	assert.Equal(t, first.Number, dupErr.Number)
}

func TestAccountRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()

	acc := newTestAccount(t, uuid.New())
	require.NoError(t, repo.Create(ctx, acc))

	got, err := repo.GetByID(ctx, acc.ID)
	require.NoError(t, err)
	got.Balance = 999999

	fresh, err := repo.GetByID(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), fresh.Balance, "Mutating a returned account must not touch the store")
}

func TestAccountRepository_UpdateBalance(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()

	acc := newTestAccount(t, uuid.New())
	require.NoError(t, repo.Create(ctx, acc))

	require.NoError(t, repo.UpdateBalance(ctx, acc.ID, 12345))

	got, err := repo.GetByID(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(12345), got.Balance)

	err = repo.UpdateBalance(ctx, uuid.New(), 1)
	assert.ErrorIs(t, err, account.ErrAccountNotFound{})
}

func TestAccountRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()

	acc := newTestAccount(t, uuid.New())
	require.NoError(t, repo.Create(ctx, acc))

	require.NoError(t, repo.UpdateStatus(ctx, acc.ID, account.StatusClosed))

	got, err := repo.GetByID(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, account.StatusClosed, got.Status)
}

func TestAccountRepository_ListAndCountByClient(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()

	clientID := uuid.New()
	otherClientID := uuid.New()

	first := newTestAccount(t, clientID)
	second := newTestAccount(t, clientID)
	third := newTestAccount(t, otherClientID)
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, third))
	require.NoError(t, repo.UpdateStatus(ctx, second.ID, account.StatusClosed))

	accounts, err := repo.ListByClient(ctx, clientID)
	require.NoError(t, err)
	assert.Len(t, accounts, 2)

	active, err := repo.CountActiveByClient(ctx, clientID)
	require.NoError(t, err)
	assert.Equal(t, 1, active)
}
