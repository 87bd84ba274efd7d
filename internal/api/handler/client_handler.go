package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mfsociety12/Dokal-test-gest/internal/domain/client"
	"github.com/mfsociety12/Dokal-test-gest/internal/service"
)

// ClientHandler handles HTTP requests for client operations
type ClientHandler struct {
	clientService service.ClientService
	logger        *slog.Logger
}

// NewClientHandler creates a new client handler
func NewClientHandler(logger *slog.Logger, clientService service.ClientService) *ClientHandler {
	return &ClientHandler{
		clientService: clientService,
		logger:        logger,
	}
}

// Create registers a new client
func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	created, err := h.clientService.CreateClient(c.Request.Context(), req.LastName, req.FirstName, req.Phone, req.Email, req.Address)
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}

	RespondCreated(c, mapClientToResponse(created))
}

// GetByID retrieves a client by ID
func (h *ClientHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondBadRequest(c, "Invalid client ID")
		return
	}

	found, err := h.clientService.GetClientByID(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}

	RespondOK(c, mapClientToResponse(found))
}

// List returns clients filtered by status. The filter defaults to active;
// "all" returns every client including deactivated ones.
func (h *ClientHandler) List(c *gin.Context) {
	filter := client.StatusFilter(c.DefaultQuery("status", string(client.FilterActive)))
	if filter != client.FilterActive && filter != client.FilterInactive && filter != client.FilterAll {
		RespondBadRequest(c, "status must be one of: active, inactive, all")
		return
	}

	clients, err := h.clientService.ListClients(c.Request.Context(), filter)
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}

	responses := make([]ClientResponse, 0, len(clients))
	for _, cl := range clients {
		responses = append(responses, mapClientToResponse(cl))
	}
	RespondOK(c, responses)
}

// Update applies a partial update to a client's contact details
func (h *ClientHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondBadRequest(c, "Invalid client ID")
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	updated, err := h.clientService.UpdateClient(c.Request.Context(), id, client.Update{
		LastName:  req.LastName,
		FirstName: req.FirstName,
		Phone:     req.Phone,
		Email:     req.Email,
		Address:   req.Address,
	})
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}

	RespondOK(c, mapClientToResponse(updated))
}

// Deactivate soft-deletes a client. Rejected with 409 while the client still
// owns active accounts.
func (h *ClientHandler) Deactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondBadRequest(c, "Invalid client ID")
		return
	}

	if err := h.clientService.DeactivateClient(c.Request.Context(), id); err != nil {
		respondDomainError(c, h.logger, err)
		return
	}

	RespondNoContent(c)
}
