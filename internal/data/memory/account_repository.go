package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/mfsociety12/Dokal-test-gest/internal/domain/account"
)

// AccountRepository is an in-memory account.Repository. Account numbers are
// globally unique within the store.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]account.Account
	numbers  map[string]uuid.UUID
}

// NewAccountRepository creates an empty in-memory account repository
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts: make(map[uuid.UUID]account.Account),
		numbers:  make(map[string]uuid.UUID),
	}
}

// Create stores a new account, rejecting duplicate account numbers
func (r *AccountRepository) Create(ctx context.Context, a *account.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.numbers[a.Number]; taken {
		return account.ErrDuplicateNumber{Number: a.Number}
	}

	r.accounts[a.ID] = *a
	r.numbers[a.Number] = a.ID
	return nil
}

// GetByID returns a copy of the account, or ErrAccountNotFound
func (r *AccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.accounts[id]
	if !ok {
		return nil, account.ErrAccountNotFound{AccountID: id}
	}
	return &a, nil
}

// ListByClient returns all accounts owned by the client
func (r *AccountRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*account.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var accounts []*account.Account
	for _, a := range r.accounts {
		if a.ClientID != clientID {
			continue
		}
		a := a
		accounts = append(accounts, &a)
	}
	return accounts, nil
}

// UpdateBalance sets the account balance. The caller must hold the account's
// lock; the store only guards its own map.
func (r *AccountRepository) UpdateBalance(ctx context.Context, id uuid.UUID, balance int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.accounts[id]
	if !ok {
		return account.ErrAccountNotFound{AccountID: id}
	}

	a.Balance = balance
	r.accounts[id] = a
	return nil
}

// UpdateStatus changes only the account's status
func (r *AccountRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status account.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.accounts[id]
	if !ok {
		return account.ErrAccountNotFound{AccountID: id}
	}

	a.Status = status
	r.accounts[id] = a
	return nil
}

// CountActiveByClient counts the client's accounts still in active status
func (r *AccountRepository) CountActiveByClient(ctx context.Context, clientID uuid.UUID) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, a := range r.accounts {
		if a.ClientID == clientID && a.Status == account.StatusActive {
			count++
		}
	}
	return count, nil
}
