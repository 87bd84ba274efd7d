package client

import "strings"

// Update carries the mutable client fields. A nil field keeps the current
// value; ID, status and creation date are never updatable.
type Update struct {
	LastName  *string
	FirstName *string
	Phone     *string
	Email     *string
	Address   *string
}

// Apply validates every provided field and then assigns them. Nothing is
// changed when any field fails validation.
func (c *Client) Apply(u Update) error {
	if u.LastName != nil {
		if err := validateName(*u.LastName); err != nil {
			return ErrInvalidLastName
		}
	}
	if u.FirstName != nil {
		if err := validateName(*u.FirstName); err != nil {
			return ErrInvalidFirstName
		}
	}
	if u.Phone != nil && !phonePattern.MatchString(*u.Phone) {
		return ErrInvalidPhone
	}
	if u.Email != nil && *u.Email != "" && !emailPattern.MatchString(*u.Email) {
		return ErrInvalidEmail
	}
	if u.Address != nil && strings.TrimSpace(*u.Address) == "" {
		return ErrEmptyAddress
	}

	if u.LastName != nil {
		c.LastName = *u.LastName
	}
	if u.FirstName != nil {
		c.FirstName = *u.FirstName
	}
	if u.Phone != nil {
		c.Phone = *u.Phone
	}
	if u.Email != nil {
		c.Email = *u.Email
	}
	if u.Address != nil {
		c.Address = *u.Address
	}
	return nil
}
