// Package memory implements the domain repositories on process-local maps.
// The service runs as a single process with a single store, so this is the
// production backend, not a test double. All repositories return copies:
// callers never share memory with the store.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/mfsociety12/Dokal-test-gest/internal/domain/client"
)

// ClientRepository is an in-memory client.Repository
type ClientRepository struct {
	mu      sync.RWMutex
	clients map[uuid.UUID]client.Client
}

// NewClientRepository creates an empty in-memory client repository
func NewClientRepository() *ClientRepository {
	return &ClientRepository{
		clients: make(map[uuid.UUID]client.Client),
	}
}

// Create stores a new client
func (r *ClientRepository) Create(ctx context.Context, c *client.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.clients[c.ID] = *c
	return nil
}

// GetByID returns a copy of the client, or ErrClientNotFound
func (r *ClientRepository) GetByID(ctx context.Context, id uuid.UUID) (*client.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.clients[id]
	if !ok {
		return nil, client.ErrClientNotFound{ClientID: id}
	}
	return &c, nil
}

// List returns the clients matching the status filter
func (r *ClientRepository) List(ctx context.Context, filter client.StatusFilter) ([]*client.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	clients := make([]*client.Client, 0, len(r.clients))
	for _, c := range r.clients {
		switch filter {
		case client.FilterActive:
			if c.Status != client.StatusActive {
				continue
			}
		case client.FilterInactive:
			if c.Status != client.StatusInactive {
				continue
			}
		}
		c := c
		clients = append(clients, &c)
	}
	return clients, nil
}

// Update replaces the stored client, keeping ID and creation date immutable
func (r *ClientRepository) Update(ctx context.Context, c *client.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.clients[c.ID]
	if !ok {
		return client.ErrClientNotFound{ClientID: c.ID}
	}

	updated := *c
	updated.CreatedAt = existing.CreatedAt
	r.clients[c.ID] = updated
	return nil
}

// UpdateStatus changes only the client's status
func (r *ClientRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status client.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.clients[id]
	if !ok {
		return client.ErrClientNotFound{ClientID: id}
	}

	c.Status = status
	r.clients[id] = c
	return nil
}
