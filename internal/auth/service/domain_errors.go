package service

import (
	"net/http"

	commonerrors "github.com/AlibekovAA/notes-api/internal/common/errors"
)

var (
	ErrUserExists = commonerrors.NewDomainError(
		"USER_EXISTS",
		commonerrors.CategoryValidation,
		http.StatusBadRequest,
		"User already exists",
	)

	ErrUserNotFound = commonerrors.NewDomainError(
		"USER_NOT_FOUND",
		commonerrors.CategoryNotFound,
		http.StatusNotFound,
		"User not found",
	)

	ErrInvalidCredentials = commonerrors.NewDomainError(
		"INVALID_CREDENTIALS",
		commonerrors.CategoryUnauthorized,
		http.StatusUnauthorized,
		"Invalid credentials",
	)

	ErrValidation = commonerrors.NewDomainError(
		"VALIDATION_FAILED",
		commonerrors.CategoryValidation,
		http.StatusBadRequest,
		"validation failed",
	)
)
