package ledger

import (
	"time"

	"github.com/google/uuid"
)

// Kind defines the movement a transaction records. A transfer produces two
// records, one leg per account.
type Kind string

const (
	KindDeposit        Kind = "deposit"
	KindWithdrawal     Kind = "withdrawal"
	KindTransferDebit  Kind = "transfer_debit"
	KindTransferCredit Kind = "transfer_credit"
)

// Status defines transaction states. The engine only records movements that
// already happened, so the only state is succeeded.
type Status string

const (
	StatusSucceeded Status = "succeeded"
)

// Transaction is an immutable ledger record. Amount is signed: deposits and
// transfer credits are positive, withdrawals and transfer debits are negative.
// CounterpartID names the other account of a transfer and is nil otherwise.
// Seq is assigned by the store on append and totally orders records created
// within the same clock tick.
type Transaction struct {
	ID            uuid.UUID  `json:"id"`
	AccountID     uuid.UUID  `json:"account_id"`
	Kind          Kind       `json:"kind"`
	Amount        int64      `json:"amount"`
	Currency      string     `json:"currency"`
	Description   string     `json:"description"`
	CounterpartID *uuid.UUID `json:"counterpart_id,omitempty"`
	Status        Status     `json:"status"`
	Seq           uint64     `json:"seq"`
	CreatedAt     time.Time  `json:"created_at"`
}

// IsCredit reports whether the record moves money into its account
func (t *Transaction) IsCredit() bool {
	return t.Amount > 0
}
