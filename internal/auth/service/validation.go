package service

import (
	"github.com/AlibekovAA/notes-api/internal/common/validation"
)

type credentials struct {
	Username string `validate:"required,max=64"`
	Password string `validate:"required,maxbytes=72"`
}

// validateCredentials only checks presence and upper bounds. bcrypt rejects
// passwords longer than 72 bytes, so the password limit is in bytes, not runes.
func validateCredentials(username, password string) error {
	msg, err := validation.Struct(credentials{Username: username, Password: password})
	if err != nil {
		return newInternalError("VALIDATOR_FAILED", "failed to validate input", err)
	}
	if msg != "" {
		return newValidationError(msg)
	}
	return nil
}
