package domain

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
)

var ErrInvalidContact = errors.New("domain: invalid contact")

// ValidateContact checks the guest contact fields used by every reservation form.
// Email may be empty when optionalEmail is set.
func ValidateContact(name, email, phone string, optionalEmail bool) error {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > MaxNameLength {
		return fmt.Errorf("%w: name is required (max %d chars)", ErrInvalidContact, MaxNameLength)
	}
	if strings.TrimSpace(phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidContact)
	}
	if email == "" && optionalEmail {
		return nil
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: invalid email", ErrInvalidContact)
	}
	return nil
}
