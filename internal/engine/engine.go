// Package engine implements the transaction engine: the only component
// allowed to change account balances. Every operation follows the same
// shape: validate against an unlocked read, acquire the account lock(s),
// re-validate under the lock, mutate, record, release.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mfsociety12/Dokal-test-gest/internal/config"
	"github.com/mfsociety12/Dokal-test-gest/internal/domain/account"
	"github.com/mfsociety12/Dokal-test-gest/internal/domain/ledger"
)

// Engine orchestrates deposits, withdrawals and transfers against the store
type Engine struct {
	accounts account.Repository
	records  ledger.Repository
	locks    *AccountLocks
	cfg      *config.LedgerConfig
	logger   *slog.Logger
}

// New creates a transaction engine over the given store and lock registry
func New(logger *slog.Logger, cfg *config.LedgerConfig, accounts account.Repository, records ledger.Repository, locks *AccountLocks) *Engine {
	return &Engine{
		accounts: accounts,
		records:  records,
		locks:    locks,
		cfg:      cfg,
		logger:   logger,
	}
}

// OperationResult carries the record and resulting balance of a
// single-account operation
type OperationResult struct {
	Record  *ledger.Transaction
	Balance int64
}

// TransferResult carries both legs of a transfer and both resulting balances
type TransferResult struct {
	Debit              *ledger.Transaction
	Credit             *ledger.Transaction
	SourceBalance      int64
	DestinationBalance int64
}

// Deposit credits the account and records one deposit transaction.
// Returns ErrAccountLocked if another operation holds the account.
func (e *Engine) Deposit(ctx context.Context, accountID uuid.UUID, amount int64, description string) (*OperationResult, error) {
	if err := e.validateAmount(amount); err != nil {
		return nil, err
	}
	description, err := e.normalizeDescription(description, "Deposit")
	if err != nil {
		return nil, err
	}

	return e.applyToAccount(ctx, accountID, amount, ledger.KindDeposit, description)
}

// Withdraw debits the account and records one withdrawal transaction. The
// balance check runs again under the lock; that second check is the
// authoritative one.
func (e *Engine) Withdraw(ctx context.Context, accountID uuid.UUID, amount int64, description string) (*OperationResult, error) {
	if err := e.validateAmount(amount); err != nil {
		return nil, err
	}
	description, err := e.normalizeDescription(description, "Withdrawal")
	if err != nil {
		return nil, err
	}

	return e.applyToAccount(ctx, accountID, -amount, ledger.KindWithdrawal, description)
}

// applyToAccount runs the single-account path shared by deposits and
// withdrawals. The delta's sign already encodes direction.
func (e *Engine) applyToAccount(ctx context.Context, accountID uuid.UUID, delta int64, kind ledger.Kind, description string) (*OperationResult, error) {
	// Fail fast on an unlocked read before contending for the lock
	acc, err := e.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !acc.IsActive() {
		return nil, account.ErrAccountInactive{AccountID: accountID}
	}
	if delta < 0 && acc.Balance+delta < 0 {
		return nil, account.ErrInsufficientFunds{AccountID: accountID, Balance: acc.Balance, Requested: -delta}
	}

	if !e.locks.TryAcquire(accountID) {
		return nil, ErrAccountLocked{AccountID: accountID}
	}
	defer e.locks.Release(accountID)

	// Re-read under the lock; the store may have changed since the first read
	acc, err = e.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	previousBalance := acc.Balance

	newBalance, err := acc.ApplyDelta(delta)
	if err != nil {
		return nil, err
	}
	if newBalance < 0 {
		e.logger.Error("negative balance after mutation",
			"account_id", accountID.String(),
			"balance", newBalance,
			"delta", delta,
		)
		return nil, ErrInvariantViolation{AccountID: accountID, Balance: newBalance}
	}

	if err := e.accounts.UpdateBalance(ctx, accountID, newBalance); err != nil {
		return nil, fmt.Errorf("update balance for account %s: %w", accountID.String(), err)
	}

	record := &ledger.Transaction{
		ID:          uuid.New(),
		AccountID:   accountID,
		Kind:        kind,
		Amount:      delta,
		Currency:    acc.Currency,
		Description: description,
		Status:      ledger.StatusSucceeded,
		CreatedAt:   time.Now(),
	}

	if err := e.records.Append(ctx, record); err != nil {
		// Balance change and record are one unit: undo the mutation
		if rbErr := e.accounts.UpdateBalance(ctx, accountID, previousBalance); rbErr != nil {
			e.logger.Error("balance rollback failed after append failure",
				"account_id", accountID.String(),
				"error", rbErr,
			)
		}
		return nil, fmt.Errorf("append transaction record: %w", err)
	}

	e.logger.Info("transaction recorded",
		"transaction_id", record.ID.String(),
		"account_id", accountID.String(),
		"kind", string(kind),
		"amount", delta,
		"new_balance", newBalance,
	)

	return &OperationResult{Record: record, Balance: newBalance}, nil
}

// Transfer moves amount from the source to the destination account as one
// atomic unit, recording a debit leg and a credit leg linked through the
// counterpart account IDs. Both locks are taken in canonical order and
// released on every exit path.
func (e *Engine) Transfer(ctx context.Context, sourceID, destinationID uuid.UUID, amount int64, description string) (*TransferResult, error) {
	if sourceID == destinationID {
		return nil, ErrSameAccount
	}
	if err := e.validateAmount(amount); err != nil {
		return nil, err
	}
	if err := e.validateDescription(description); err != nil {
		return nil, err
	}

	// Unlocked precondition reads on both accounts
	source, err := e.accounts.GetByID(ctx, sourceID)
	if err != nil {
		return nil, err
	}
	destination, err := e.accounts.GetByID(ctx, destinationID)
	if err != nil {
		return nil, err
	}
	if !source.IsActive() {
		return nil, account.ErrAccountInactive{AccountID: sourceID}
	}
	if !destination.IsActive() {
		return nil, account.ErrAccountInactive{AccountID: destinationID}
	}
	if source.Balance < amount {
		return nil, account.ErrInsufficientFunds{AccountID: sourceID, Balance: source.Balance, Requested: amount}
	}

	blocked, ok := e.locks.TryAcquirePair(sourceID, destinationID)
	if !ok {
		return nil, ErrAccountLocked{AccountID: blocked}
	}
	defer e.locks.ReleasePair(sourceID, destinationID)

	// Authoritative re-reads under both locks
	source, err = e.accounts.GetByID(ctx, sourceID)
	if err != nil {
		return nil, err
	}
	destination, err = e.accounts.GetByID(ctx, destinationID)
	if err != nil {
		return nil, err
	}
	sourcePrevious := source.Balance
	destinationPrevious := destination.Balance

	sourceBalance, err := source.ApplyDelta(-amount)
	if err != nil {
		return nil, err
	}
	destinationBalance, err := destination.ApplyDelta(amount)
	if err != nil {
		return nil, err
	}
	if sourceBalance < 0 {
		e.logger.Error("negative balance after transfer debit",
			"account_id", sourceID.String(),
			"balance", sourceBalance,
			"amount", amount,
		)
		return nil, ErrInvariantViolation{AccountID: sourceID, Balance: sourceBalance}
	}

	if err := e.accounts.UpdateBalance(ctx, sourceID, sourceBalance); err != nil {
		return nil, fmt.Errorf("update balance for account %s: %w", sourceID.String(), err)
	}
	if err := e.accounts.UpdateBalance(ctx, destinationID, destinationBalance); err != nil {
		if rbErr := e.accounts.UpdateBalance(ctx, sourceID, sourcePrevious); rbErr != nil {
			e.logger.Error("source balance rollback failed",
				"account_id", sourceID.String(),
				"error", rbErr,
			)
		}
		return nil, fmt.Errorf("update balance for account %s: %w", destinationID.String(), err)
	}

	now := time.Now()
	debit := &ledger.Transaction{
		ID:            uuid.New(),
		AccountID:     sourceID,
		Kind:          ledger.KindTransferDebit,
		Amount:        -amount,
		Currency:      source.Currency,
		Description:   defaultIfEmpty(description, "Transfer to "+destination.Number),
		CounterpartID: &destinationID,
		Status:        ledger.StatusSucceeded,
		CreatedAt:     now,
	}
	credit := &ledger.Transaction{
		ID:            uuid.New(),
		AccountID:     destinationID,
		Kind:          ledger.KindTransferCredit,
		Amount:        amount,
		Currency:      destination.Currency,
		Description:   defaultIfEmpty(description, "Transfer from "+source.Number),
		CounterpartID: &sourceID,
		Status:        ledger.StatusSucceeded,
		CreatedAt:     now,
	}

	if err := e.records.Append(ctx, debit, credit); err != nil {
		// Neither balance change may survive without its records
		if rbErr := e.accounts.UpdateBalance(ctx, sourceID, sourcePrevious); rbErr != nil {
			e.logger.Error("source balance rollback failed after append failure",
				"account_id", sourceID.String(),
				"error", rbErr,
			)
		}
		if rbErr := e.accounts.UpdateBalance(ctx, destinationID, destinationPrevious); rbErr != nil {
			e.logger.Error("destination balance rollback failed after append failure",
				"account_id", destinationID.String(),
				"error", rbErr,
			)
		}
		return nil, fmt.Errorf("append transfer records: %w", err)
	}

	e.logger.Info("transfer recorded",
		"debit_id", debit.ID.String(),
		"credit_id", credit.ID.String(),
		"source_id", sourceID.String(),
		"destination_id", destinationID.String(),
		"amount", amount,
		"source_balance", sourceBalance,
		"destination_balance", destinationBalance,
	)

	return &TransferResult{
		Debit:              debit,
		Credit:             credit,
		SourceBalance:      sourceBalance,
		DestinationBalance: destinationBalance,
	}, nil
}

// History returns the account's transactions, newest first, truncated to
// limit. A non-positive limit means the configured default; requests above
// the configured maximum are capped.
func (e *Engine) History(ctx context.Context, accountID uuid.UUID, limit int) ([]*ledger.Transaction, error) {
	if _, err := e.accounts.GetByID(ctx, accountID); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = e.cfg.DefaultHistoryLimit
	}
	if limit > e.cfg.MaxHistoryLimit {
		limit = e.cfg.MaxHistoryLimit
	}

	return e.records.ListByAccount(ctx, accountID, limit)
}

// GetTransaction returns a single ledger record by ID
func (e *Engine) GetTransaction(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	return e.records.GetByID(ctx, id)
}

func (e *Engine) validateAmount(amount int64) error {
	if amount < e.cfg.MinAmount {
		return ErrAmountBelowMinimum{Amount: amount, Minimum: e.cfg.MinAmount}
	}
	return nil
}

func (e *Engine) validateDescription(description string) error {
	if len(description) > e.cfg.MaxDescriptionLength {
		return ErrDescriptionTooLong{Length: len(description), Maximum: e.cfg.MaxDescriptionLength}
	}
	return nil
}

func (e *Engine) normalizeDescription(description, fallback string) (string, error) {
	if err := e.validateDescription(description); err != nil {
		return "", err
	}
	return defaultIfEmpty(description, fallback), nil
}

func defaultIfEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
