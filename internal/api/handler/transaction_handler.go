package handler

import (
	"log/slog"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mfsociety12/Dokal-test-gest/internal/service"
)

// TransactionHandler handles HTTP requests for money movement and ledger reads
type TransactionHandler struct {
	transactionService service.TransactionService
	logger             *slog.Logger
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(logger *slog.Logger, transactionService service.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		logger:             logger,
	}
}

// Deposit credits an account
func (h *TransactionHandler) Deposit(c *gin.Context) {
	req, accountID, ok := h.bindMoveMoney(c)
	if !ok {
		return
	}

	res, err := h.transactionService.Deposit(c.Request.Context(), accountID, req.Amount, req.Description)
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}

	RespondCreated(c, mapOperationToResponse(res))
}

// Withdraw debits an account
func (h *TransactionHandler) Withdraw(c *gin.Context) {
	req, accountID, ok := h.bindMoveMoney(c)
	if !ok {
		return
	}

	res, err := h.transactionService.Withdraw(c.Request.Context(), accountID, req.Amount, req.Description)
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}

	RespondCreated(c, mapOperationToResponse(res))
}

// Transfer moves funds between two accounts as one atomic unit
func (h *TransactionHandler) Transfer(c *gin.Context) {
	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	sourceID, err := uuid.Parse(req.SourceAccountID)
	if err != nil {
		RespondBadRequest(c, "Invalid source account ID")
		return
	}
	destinationID, err := uuid.Parse(req.DestinationAccountID)
	if err != nil {
		RespondBadRequest(c, "Invalid destination account ID")
		return
	}

	res, err := h.transactionService.Transfer(c.Request.Context(), sourceID, destinationID, req.Amount, req.Description)
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}

	RespondCreated(c, mapTransferToResponse(res))
}

// GetByID retrieves a single ledger record
func (h *TransactionHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondBadRequest(c, "Invalid transaction ID")
		return
	}

	record, err := h.transactionService.GetTransaction(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}

	RespondOK(c, mapTransactionToResponse(record))
}

// HistoryByAccount returns an account's transactions, newest first. The
// optional ?limit= query bounds the page; out-of-range values fall back to
// the configured default and cap.
func (h *TransactionHandler) HistoryByAccount(c *gin.Context) {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondBadRequest(c, "Invalid account ID")
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			RespondBadRequest(c, "limit must be a non-negative integer")
			return
		}
	}

	records, err := h.transactionService.History(c.Request.Context(), accountID, limit)
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}

	responses := make([]TransactionResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, mapTransactionToResponse(r))
	}
	RespondOK(c, TransactionListResponse{Transactions: responses})
}

func (h *TransactionHandler) bindMoveMoney(c *gin.Context) (MoveMoneyRequest, uuid.UUID, bool) {
	var req MoveMoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return req, uuid.Nil, false
	}

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		RespondBadRequest(c, "Invalid account ID")
		return req, uuid.Nil, false
	}

	return req, accountID, true
}
