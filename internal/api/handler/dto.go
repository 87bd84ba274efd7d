package handler

import (
	"time"

	"github.com/mfsociety12/Dokal-test-gest/internal/domain/account"
	"github.com/mfsociety12/Dokal-test-gest/internal/domain/client"
	"github.com/mfsociety12/Dokal-test-gest/internal/domain/ledger"
	"github.com/mfsociety12/Dokal-test-gest/internal/engine"
)

// CreateClientRequest represents a request to register a new client
type CreateClientRequest struct {
	LastName  string `json:"last_name" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Email     string `json:"email,omitempty"`
	Address   string `json:"address" binding:"required"`
}

// UpdateClientRequest represents a partial update of a client's mutable
// fields; absent fields keep their current values
type UpdateClientRequest struct {
	LastName  *string `json:"last_name,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
	Address   *string `json:"address,omitempty"`
}

// ClientResponse represents a client in API responses
type ClientResponse struct {
	ID        string `json:"id"`
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email,omitempty"`
	Address   string `json:"address"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// OpenAccountRequest represents a request to open a new account
type OpenAccountRequest struct {
	ClientID string `json:"client_id" binding:"required,uuid"`
	Type     string `json:"type" binding:"omitempty,oneof=savings checking"`
}

// AccountResponse represents an account in API responses
type AccountResponse struct {
	ID        string `json:"id"`
	ClientID  string `json:"client_id"`
	Number    string `json:"number"`
	Balance   int64  `json:"balance"`
	Currency  string `json:"currency"`
	Type      string `json:"type"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// MoveMoneyRequest represents a deposit or withdrawal request
type MoveMoneyRequest struct {
	AccountID   string `json:"account_id" binding:"required,uuid"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	Description string `json:"description,omitempty"`
}

// TransferRequest represents a transfer between two accounts
type TransferRequest struct {
	SourceAccountID      string `json:"source_account_id" binding:"required,uuid"`
	DestinationAccountID string `json:"destination_account_id" binding:"required,uuid"`
	Amount               int64  `json:"amount" binding:"required,gt=0"`
	Description          string `json:"description,omitempty"`
}

// TransactionResponse represents a ledger record in API responses. Amounts
// are signed: positive for credits, negative for debits.
type TransactionResponse struct {
	ID            string `json:"id"`
	AccountID     string `json:"account_id"`
	Kind          string `json:"kind"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	Description   string `json:"description"`
	CounterpartID string `json:"counterpart_id,omitempty"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
}

// OperationResponse represents the outcome of a deposit or withdrawal
type OperationResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Balance     int64               `json:"balance"`
}

// TransferResponse represents both legs of a completed transfer
type TransferResponse struct {
	Debit              TransactionResponse `json:"debit"`
	Credit             TransactionResponse `json:"credit"`
	SourceBalance      int64               `json:"source_balance"`
	DestinationBalance int64               `json:"destination_balance"`
}

// TransactionListResponse represents an account's history in API responses
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

func mapClientToResponse(c *client.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID.String(),
		LastName:  c.LastName,
		FirstName: c.FirstName,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

func mapAccountToResponse(a *account.Account) AccountResponse {
	return AccountResponse{
		ID:        a.ID.String(),
		ClientID:  a.ClientID.String(),
		Number:    a.Number,
		Balance:   a.Balance,
		Currency:  a.Currency,
		Type:      string(a.Type),
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}

func mapTransactionToResponse(t *ledger.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:          t.ID.String(),
		AccountID:   t.AccountID.String(),
		Kind:        string(t.Kind),
		Amount:      t.Amount,
		Currency:    t.Currency,
		Description: t.Description,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
	if t.CounterpartID != nil {
		resp.CounterpartID = t.CounterpartID.String()
	}
	return resp
}

func mapOperationToResponse(res *engine.OperationResult) OperationResponse {
	return OperationResponse{
		Transaction: mapTransactionToResponse(res.Record),
		Balance:     res.Balance,
	}
}

func mapTransferToResponse(res *engine.TransferResult) TransferResponse {
	return TransferResponse{
		Debit:              mapTransactionToResponse(res.Debit),
		Credit:             mapTransactionToResponse(res.Credit),
		SourceBalance:      res.SourceBalance,
		DestinationBalance: res.DestinationBalance,
	}
}
