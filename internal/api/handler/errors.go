package handler

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/mfsociety12/Dokal-test-gest/internal/domain/account"
	"github.com/mfsociety12/Dokal-test-gest/internal/domain/client"
	"github.com/mfsociety12/Dokal-test-gest/internal/domain/ledger"
	"github.com/mfsociety12/Dokal-test-gest/internal/engine"
)

// respondDomainError maps a typed domain error to its HTTP status. Unknown
// errors are logged and answered with a generic 500 so internals never leak.
func respondDomainError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, client.ErrClientNotFound{}),
		errors.Is(err, account.ErrAccountNotFound{}),
		errors.Is(err, ledger.ErrTransactionNotFound{}):
		RespondNotFound(c, err.Error())

	case errors.Is(err, engine.ErrAccountLocked{}),
		errors.Is(err, account.ErrNonZeroBalance{}),
		errors.Is(err, client.ErrHasActiveAccounts{}):
		RespondConflict(c, err.Error())

	case errors.Is(err, engine.ErrInvariantViolation{}):
		logger.Error("invariant violation surfaced to API", "error", err)
		RespondInternalError(c)

	case errors.Is(err, client.ErrInvalidLastName),
		errors.Is(err, client.ErrInvalidFirstName),
		errors.Is(err, client.ErrInvalidPhone),
		errors.Is(err, client.ErrInvalidEmail),
		errors.Is(err, client.ErrEmptyAddress),
		errors.Is(err, account.ErrInvalidAccountType),
		errors.Is(err, engine.ErrSameAccount),
		errors.Is(err, engine.ErrAmountBelowMinimum{}),
		errors.Is(err, engine.ErrDescriptionTooLong{}),
		errors.Is(err, client.ErrClientInactive{}),
		errors.Is(err, account.ErrAccountInactive{}),
		errors.Is(err, account.ErrInsufficientFunds{}):
		RespondBadRequest(c, err.Error())

	default:
		logger.Error("unhandled service error", "error", err)
		RespondInternalError(c)
	}
}
