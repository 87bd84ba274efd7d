package client

import (
	"context"

	"github.com/google/uuid"
)

// StatusFilter selects which clients a listing returns
type StatusFilter string

const (
	FilterActive   StatusFilter = "active"
	FilterInactive StatusFilter = "inactive"
	FilterAll      StatusFilter = "all"
)

// Repository defines client persistence operations
type Repository interface {
	Create(ctx context.Context, client *Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*Client, error)
	List(ctx context.Context, filter StatusFilter) ([]*Client, error)
	Update(ctx context.Context, client *Client) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
}

// ErrClientNotFound indicates a missing client
type ErrClientNotFound struct {
	ClientID uuid.UUID
}

func (e ErrClientNotFound) Error() string {
	return "client not found: " + e.ClientID.String()
}

// Is matches any ErrClientNotFound when the target carries a nil ID
func (e ErrClientNotFound) Is(target error) bool {
	t, ok := target.(ErrClientNotFound)
	if !ok {
		return false
	}
	return t.ClientID == uuid.Nil || e.ClientID == t.ClientID
}

// ErrClientInactive indicates an operation on a deactivated client
type ErrClientInactive struct {
	ClientID uuid.UUID
}

func (e ErrClientInactive) Error() string {
	return "client is not active: " + e.ClientID.String()
}

// Is matches any ErrClientInactive when the target carries a nil ID
func (e ErrClientInactive) Is(target error) bool {
	t, ok := target.(ErrClientInactive)
	if !ok {
		return false
	}
	return t.ClientID == uuid.Nil || e.ClientID == t.ClientID
}

// ErrHasActiveAccounts blocks deactivation of a client who still owns active accounts
type ErrHasActiveAccounts struct {
	ClientID uuid.UUID
	Count    int
}

func (e ErrHasActiveAccounts) Error() string {
	return "client still has active accounts: " + e.ClientID.String()
}

// Is matches any ErrHasActiveAccounts when the target carries a nil ID
func (e ErrHasActiveAccounts) Is(target error) bool {
	t, ok := target.(ErrHasActiveAccounts)
	if !ok {
		return false
	}
	return t.ClientID == uuid.Nil || e.ClientID == t.ClientID
}
