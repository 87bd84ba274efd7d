package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/mfsociety12/Dokal-test-gest/internal/domain/ledger"
)

// LedgerRepository is an in-memory, append-only ledger.Repository. Records
// are never mutated or deleted once appended. Each record receives a
// monotonically increasing sequence number under the repository mutex, which
// gives the tie-break order for history queries.
type LedgerRepository struct {
	mu        sync.RWMutex
	records   []ledger.Transaction
	byID      map[uuid.UUID]int
	byAccount map[uuid.UUID][]int
	seq       uint64
}

// NewLedgerRepository creates an empty in-memory ledger
func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{
		byID:      make(map[uuid.UUID]int),
		byAccount: make(map[uuid.UUID][]int),
	}
}

// Append stores the records as one atomic unit under a single critical
// section. It cannot fail: the store validates nothing and only allocates.
func (r *LedgerRepository) Append(ctx context.Context, records ...*ledger.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, record := range records {
		r.seq++
		record.Seq = r.seq

		idx := len(r.records)
		r.records = append(r.records, *record)
		r.byID[record.ID] = idx
		r.byAccount[record.AccountID] = append(r.byAccount[record.AccountID], idx)
	}
	return nil
}

// GetByID returns a copy of the record, or ErrTransactionNotFound
func (r *LedgerRepository) GetByID(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, ledger.ErrTransactionNotFound{TransactionID: id}
	}

	record := r.records[idx]
	return &record, nil
}

// ListByAccount returns up to limit records for the account, newest first,
// ties broken by sequence number descending
func (r *LedgerRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]*ledger.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	indexes := r.byAccount[accountID]
	records := make([]*ledger.Transaction, 0, len(indexes))
	for _, idx := range indexes {
		record := r.records[idx]
		records = append(records, &record)
	}

	sort.Slice(records, func(i, j int) bool {
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.After(records[j].CreatedAt)
		}
		return records[i].Seq > records[j].Seq
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// CountByAccount returns the number of records for the account
func (r *LedgerRepository) CountByAccount(ctx context.Context, accountID uuid.UUID) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byAccount[accountID]), nil
}
