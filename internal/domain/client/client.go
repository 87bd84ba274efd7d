package client

import (
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Common errors
var (
	errInvalidName      = errors.New("name must be 2 to 50 letters")
	ErrInvalidLastName  = errors.New("last name must be 2 to 50 letters")
	ErrInvalidFirstName = errors.New("first name must be 2 to 50 letters")
	ErrInvalidPhone     = errors.New("phone must match the format +226 XX XX XX XX")
	ErrInvalidEmail     = errors.New("email address is malformed")
	ErrEmptyAddress     = errors.New("address cannot be empty")
)

var (
	// Letters (including accented), spaces and hyphens only
	namePattern = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s-]+$`)
	// Burkina Faso national format
	phonePattern = regexp.MustCompile(`^\+226 \d{2} \d{2} \d{2} \d{2}$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Status defines the lifecycle states of a client
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Client represents a bank client who may own any number of accounts
type Client struct {
	ID        uuid.UUID `json:"id"`
	LastName  string    `json:"last_name"`
	FirstName string    `json:"first_name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// NewClient validates the given identity fields and returns an active client
func NewClient(lastName, firstName, phone, email, address string) (*Client, error) {
	if err := validateName(lastName); err != nil {
		return nil, ErrInvalidLastName
	}
	if err := validateName(firstName); err != nil {
		return nil, ErrInvalidFirstName
	}
	if !phonePattern.MatchString(phone) {
		return nil, ErrInvalidPhone
	}
	if email != "" && !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	if strings.TrimSpace(address) == "" {
		return nil, ErrEmptyAddress
	}

	return &Client{
		ID:        uuid.New(),
		LastName:  lastName,
		FirstName: firstName,
		Phone:     phone,
		Email:     email,
		Address:   address,
		Status:    StatusActive,
		CreatedAt: time.Now(),
	}, nil
}

// IsActive reports whether the client may open accounts
func (c *Client) IsActive() bool {
	return c.Status == StatusActive
}

func validateName(name string) error {
	if n := utf8.RuneCountInString(name); n < 2 || n > 50 {
		return errInvalidName
	}
	if !namePattern.MatchString(name) {
		return errInvalidName
	}
	return nil
}
