package account

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines account persistence operations. Balance updates go
// through UpdateBalance exclusively; callers are expected to hold the
// account's lock while calling it.
type Repository interface {
	Create(ctx context.Context, account *Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*Account, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]*Account, error)
	UpdateBalance(ctx context.Context, id uuid.UUID, balance int64) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	CountActiveByClient(ctx context.Context, clientID uuid.UUID) (int, error)
}

// ErrAccountNotFound indicates a missing account
type ErrAccountNotFound struct {
	AccountID uuid.UUID
}

func (e ErrAccountNotFound) Error() string {
	return "account not found: " + e.AccountID.String()
}

// Is matches any ErrAccountNotFound when the target carries a nil ID
func (e ErrAccountNotFound) Is(target error) bool {
	t, ok := target.(ErrAccountNotFound)
	if !ok {
		return false
	}
	return t.AccountID == uuid.Nil || e.AccountID == t.AccountID
}

// ErrAccountInactive indicates an operation attempted on a non-active account
type ErrAccountInactive struct {
	AccountID uuid.UUID
}

func (e ErrAccountInactive) Error() string {
	return "account is not active: " + e.AccountID.String()
}

// Is matches any ErrAccountInactive when the target carries a nil ID
func (e ErrAccountInactive) Is(target error) bool {
	t, ok := target.(ErrAccountInactive)
	if !ok {
		return false
	}
	return t.AccountID == uuid.Nil || e.AccountID == t.AccountID
}

// ErrInsufficientFunds indicates a debit larger than the current balance
type ErrInsufficientFunds struct {
	AccountID uuid.UUID
	Balance   int64
	Requested int64
}

func (e ErrInsufficientFunds) Error() string {
	return "insufficient funds on account: " + e.AccountID.String()
}

// Is matches any ErrInsufficientFunds when the target carries a nil ID
func (e ErrInsufficientFunds) Is(target error) bool {
	t, ok := target.(ErrInsufficientFunds)
	if !ok {
		return false
	}
	return t.AccountID == uuid.Nil || e.AccountID == t.AccountID
}

// ErrNonZeroBalance blocks closing an account that still holds funds
type ErrNonZeroBalance struct {
	AccountID uuid.UUID
	Balance   int64
}

func (e ErrNonZeroBalance) Error() string {
	return "account balance must be zero to close: " + e.AccountID.String()
}

// Is matches any ErrNonZeroBalance when the target carries a nil ID
func (e ErrNonZeroBalance) Is(target error) bool {
	t, ok := target.(ErrNonZeroBalance)
	if !ok {
		return false
	}
	return t.AccountID == uuid.Nil || e.AccountID == t.AccountID
}

// ErrDuplicateNumber indicates an account number collision in the store
type ErrDuplicateNumber struct {
	Number string
}

func (e ErrDuplicateNumber) Error() string {
	return "account number already in use: " + e.Number
}
