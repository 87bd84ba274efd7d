package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransaction_IsCredit(t *testing.T) {
	tests := []struct {
		name   string
		kind   Kind
		amount int64
		credit bool
	}{
		{"Deposit", KindDeposit, 50000, true},
		{"Withdrawal", KindWithdrawal, -4000, false},
		{"TransferDebit", KindTransferDebit, -400, false},
		{"TransferCredit", KindTransferCredit, 400, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := &Transaction{Kind: tt.kind, Amount: tt.amount}
			assert.Equal(t, tt.credit, tx.IsCredit())
		})
	}
}
