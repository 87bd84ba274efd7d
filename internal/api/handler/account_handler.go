package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mfsociety12/Dokal-test-gest/internal/domain/account"
	"github.com/mfsociety12/Dokal-test-gest/internal/service"
)

// AccountHandler handles HTTP requests for account operations
type AccountHandler struct {
	accountService service.AccountService
	logger         *slog.Logger
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(logger *slog.Logger, accountService service.AccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		logger:         logger,
	}
}

// Open opens a new account for an existing active client. The account type
// defaults to savings when omitted.
func (h *AccountHandler) Open(c *gin.Context) {
	var req OpenAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		RespondBadRequest(c, "Invalid client ID")
		return
	}

	accountType := account.Type(req.Type)
	if req.Type == "" {
		accountType = account.TypeSavings
	}

	opened, err := h.accountService.OpenAccount(c.Request.Context(), clientID, accountType)
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}

	RespondCreated(c, mapAccountToResponse(opened))
}

// GetByID retrieves an account by ID
func (h *AccountHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondBadRequest(c, "Invalid account ID")
		return
	}

	found, err := h.accountService.GetAccountByID(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}

	RespondOK(c, mapAccountToResponse(found))
}

// ListByClient returns all accounts owned by a client
func (h *AccountHandler) ListByClient(c *gin.Context) {
	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondBadRequest(c, "Invalid client ID")
		return
	}

	accounts, err := h.accountService.ListAccountsByClient(c.Request.Context(), clientID)
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}

	responses := make([]AccountResponse, 0, len(accounts))
	for _, acc := range accounts {
		responses = append(responses, mapAccountToResponse(acc))
	}
	RespondOK(c, responses)
}

// Close closes an account. Only an active account with a zero balance may be
// closed; a non-zero balance or an in-flight transaction answers 409.
func (h *AccountHandler) Close(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondBadRequest(c, "Invalid account ID")
		return
	}

	closed, err := h.accountService.CloseAccount(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}

	RespondOK(c, mapAccountToResponse(closed))
}
