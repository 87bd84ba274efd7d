package account

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Currency is the only currency the ledger handles, in minor units
const Currency = "XOF"

// Common errors
var (
	ErrInvalidAccountType = errors.New(`account type must be "savings" or "checking"`)
)

// Type defines the kinds of accounts a client may open
type Type string

const (
	TypeSavings  Type = "savings"
	TypeChecking Type = "checking"
)

// Status defines the lifecycle states of an account. Closing is terminal:
// a closed account is never reopened.
type Status string

const (
	StatusActive Status = "active"
	StatusClosed Status = "closed"
)

// Account represents a bank account. The balance is in minor currency units
// and never goes negative.
type Account struct {
	ID        uuid.UUID `json:"id"`
	ClientID  uuid.UUID `json:"client_id"`
	Number    string    `json:"number"`
	Balance   int64     `json:"balance"`
	Currency  string    `json:"currency"`
	Type      Type      `json:"type"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// NewAccount opens an active zero-balance account of the given type for a client
func NewAccount(clientID uuid.UUID, accountType Type) (*Account, error) {
	if accountType != TypeSavings && accountType != TypeChecking {
		return nil, ErrInvalidAccountType
	}

	return &Account{
		ID:        uuid.New(),
		ClientID:  clientID,
		Number:    NewNumber(),
		Balance:   0,
		Currency:  Currency,
		Type:      accountType,
		Status:    StatusActive,
		CreatedAt: time.Now(),
	}, nil
}

// NewNumber generates a human-readable account number, format BF-XXXXX-XXXXX
// with two independent 5-digit segments. Uniqueness is enforced by the store.
func NewNumber() string {
	part1 := 10000 + rand.Intn(90000)
	part2 := 10000 + rand.Intn(90000)
	return fmt.Sprintf("BF-%05d-%05d", part1, part2)
}

// ApplyDelta adds a signed amount to the balance and returns the new value.
// Positive deltas are credits, negative deltas are debits; the caller owns
// the sign convention. Fails if the account is not active or the resulting
// balance would be negative.
func (a *Account) ApplyDelta(delta int64) (int64, error) {
	if a.Status != StatusActive {
		return a.Balance, ErrAccountInactive{AccountID: a.ID}
	}
	if a.Balance+delta < 0 {
		return a.Balance, ErrInsufficientFunds{AccountID: a.ID, Balance: a.Balance, Requested: -delta}
	}

	a.Balance += delta
	return a.Balance, nil
}

// Close marks the account closed. Only an active account with a zero balance
// may be closed.
func (a *Account) Close() error {
	if a.Status != StatusActive {
		return ErrAccountInactive{AccountID: a.ID}
	}
	if a.Balance != 0 {
		return ErrNonZeroBalance{AccountID: a.ID, Balance: a.Balance}
	}

	a.Status = StatusClosed
	return nil
}

// IsActive reports whether the account accepts transactions
func (a *Account) IsActive() bool {
	return a.Status == StatusActive
}
