package engine

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// AccountLocks is a non-blocking per-account lock registry. Acquisition never
// queues: if the account is already locked the attempt fails immediately and
// the caller decides whether to reject or retry.
type AccountLocks struct {
	mu   sync.Mutex
	held map[uuid.UUID]struct{}
}

// NewAccountLocks creates an empty lock registry
func NewAccountLocks() *AccountLocks {
	return &AccountLocks{
		held: make(map[uuid.UUID]struct{}),
	}
}

// TryAcquire attempts to lock a single account. Returns false without
// waiting if the account is already locked.
func (l *AccountLocks) TryAcquire(id uuid.UUID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, locked := l.held[id]; locked {
		return false
	}
	l.held[id] = struct{}{}
	return true
}

// Release unlocks a single account. Releasing an unheld lock is a no-op.
func (l *AccountLocks) Release(id uuid.UUID) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.held, id)
}

// TryAcquirePair locks both accounts in canonical order, smaller identifier
// first regardless of the accounts' logical roles, so two transfers over the
// same pair in opposite directions cannot circular-wait. If the second lock
// cannot be taken the first is released before reporting failure. On failure
// the returned ID names the account that was busy.
func (l *AccountLocks) TryAcquirePair(a, b uuid.UUID) (uuid.UUID, bool) {
	first, second := canonicalOrder(a, b)

	if !l.TryAcquire(first) {
		return first, false
	}
	if !l.TryAcquire(second) {
		l.Release(first)
		return second, false
	}
	return uuid.Nil, true
}

// ReleasePair unlocks both accounts. Release order does not matter.
func (l *AccountLocks) ReleasePair(a, b uuid.UUID) {
	l.Release(a)
	l.Release(b)
}

// canonicalOrder sorts two account identifiers lexicographically by their
// string form, giving the total order used for lock acquisition
func canonicalOrder(a, b uuid.UUID) (uuid.UUID, uuid.UUID) {
	if strings.Compare(a.String(), b.String()) <= 0 {
		return a, b
	}
	return b, a
}
