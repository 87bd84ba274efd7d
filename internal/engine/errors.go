package engine

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrSameAccount = errors.New("transfer source and destination accounts must differ")
)

// ErrAmountBelowMinimum indicates a transaction amount under the configured floor
type ErrAmountBelowMinimum struct {
	Amount  int64
	Minimum int64
}

func (e ErrAmountBelowMinimum) Error() string {
	return fmt.Sprintf("amount %d is below the minimum of %d minor units", e.Amount, e.Minimum)
}

// Is matches any ErrAmountBelowMinimum
func (e ErrAmountBelowMinimum) Is(target error) bool {
	_, ok := target.(ErrAmountBelowMinimum)
	return ok
}

// ErrDescriptionTooLong indicates a description over the configured bound
type ErrDescriptionTooLong struct {
	Length  int
	Maximum int
}

func (e ErrDescriptionTooLong) Error() string {
	return fmt.Sprintf("description length %d exceeds the maximum of %d characters", e.Length, e.Maximum)
}

// Is matches any ErrDescriptionTooLong
func (e ErrDescriptionTooLong) Is(target error) bool {
	_, ok := target.(ErrDescriptionTooLong)
	return ok
}

// ErrAccountLocked indicates another operation currently holds the account's
// lock. The operation was not started; callers may retry.
type ErrAccountLocked struct {
	AccountID uuid.UUID
}

func (e ErrAccountLocked) Error() string {
	return "another operation is in progress on account: " + e.AccountID.String()
}

// Is matches any ErrAccountLocked when the target carries a nil ID
func (e ErrAccountLocked) Is(target error) bool {
	t, ok := target.(ErrAccountLocked)
	if !ok {
		return false
	}
	return t.AccountID == uuid.Nil || e.AccountID == t.AccountID
}

// ErrInvariantViolation indicates state corruption detected after a mutation,
// e.g. a negative balance. It aborts the offending operation only; the
// process keeps serving.
type ErrInvariantViolation struct {
	AccountID uuid.UUID
	Balance   int64
}

func (e ErrInvariantViolation) Error() string {
	return fmt.Sprintf("ledger invariant violated on account %s: balance %d", e.AccountID.String(), e.Balance)
}

// Is matches any ErrInvariantViolation when the target carries a nil ID
func (e ErrInvariantViolation) Is(target error) bool {
	t, ok := target.(ErrInvariantViolation)
	if !ok {
		return false
	}
	return t.AccountID == uuid.Nil || e.AccountID == t.AccountID
}
