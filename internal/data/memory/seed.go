package memory

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mfsociety12/Dokal-test-gest/internal/domain/account"
	"github.com/mfsociety12/Dokal-test-gest/internal/domain/client"
	"github.com/mfsociety12/Dokal-test-gest/internal/domain/ledger"
)

// SeedDemoData inserts one client, one savings account and its opening
// deposit. Development convenience only, guarded by configuration.
func SeedDemoData(ctx context.Context, log *slog.Logger, clients client.Repository, accounts account.Repository, records ledger.Repository) error {
	c, err := client.NewClient("Ouedraogo", "Aminata", "+226 70 12 34 56", "aminata.ouedraogo@email.com", "Ouagadougou, Secteur 15")
	if err != nil {
		return fmt.Errorf("seed client: %w", err)
	}
	if err := clients.Create(ctx, c); err != nil {
		return fmt.Errorf("seed client: %w", err)
	}

	a, err := account.NewAccount(c.ID, account.TypeSavings)
	if err != nil {
		return fmt.Errorf("seed account: %w", err)
	}
	a.Balance = 50000
	if err := accounts.Create(ctx, a); err != nil {
		return fmt.Errorf("seed account: %w", err)
	}

	opening := &ledger.Transaction{
		ID:          uuid.New(),
		AccountID:   a.ID,
		Kind:        ledger.KindDeposit,
		Amount:      50000,
		Currency:    account.Currency,
		Description: "Opening deposit",
		Status:      ledger.StatusSucceeded,
		CreatedAt:   time.Now(),
	}
	if err := records.Append(ctx, opening); err != nil {
		return fmt.Errorf("seed transaction: %w", err)
	}

	log.Info("demo data seeded",
		"client_id", c.ID.String(),
		"account_id", a.ID.String(),
		"account_number", a.Number,
		"balance", a.Balance,
	)
	return nil
}
