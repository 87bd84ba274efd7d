package ledger

import (
	"context"

	"github.com/google/uuid"
)

// Repository manages the append-only transaction log. Records passed to a
// single Append call become visible together: either every record is stored
// or none is.
type Repository interface {
	// Append stores the given records as one atomic unit, assigning each a
	// monotonically increasing sequence number.
	Append(ctx context.Context, records ...*Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	// ListByAccount returns up to limit records for the account, newest
	// first. Timestamp ties are broken by sequence number, so the order is
	// deterministic.
	ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]*Transaction, error)
	CountByAccount(ctx context.Context, accountID uuid.UUID) (int, error)
}

// ErrTransactionNotFound indicates a missing ledger record
type ErrTransactionNotFound struct {
	TransactionID uuid.UUID
}

func (e ErrTransactionNotFound) Error() string {
	return "transaction not found: " + e.TransactionID.String()
}

// Is matches any ErrTransactionNotFound when the target carries a nil ID
func (e ErrTransactionNotFound) Is(target error) bool {
	t, ok := target.(ErrTransactionNotFound)
	if !ok {
		return false
	}
	return t.TransactionID == uuid.Nil || e.TransactionID == t.TransactionID
}
