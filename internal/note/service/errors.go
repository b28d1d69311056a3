package service

import (
	"net/http"

	commonerrors "github.com/AlibekovAA/notes-api/internal/common/errors"
)

var (
	ErrNoteNotFound = commonerrors.NewDomainError(
		"NOTE_NOT_FOUND",
		commonerrors.CategoryNotFound,
		http.StatusNotFound,
		"Note not found",
	)

	ErrNoteForbidden = commonerrors.NewDomainError(
		"NOTE_FORBIDDEN",
		commonerrors.CategoryUnauthorized,
		http.StatusUnauthorized,
		"Unauthorized",
	)

	ErrValidation = commonerrors.NewDomainError(
		"VALIDATION_FAILED",
		commonerrors.CategoryValidation,
		http.StatusBadRequest,
		"validation failed",
	)
)

func newValidationError(message string) commonerrors.DomainError {
	return commonerrors.NewDomainError(
		ErrValidation.Code(),
		commonerrors.CategoryValidation,
		http.StatusBadRequest,
		message,
	)
}
