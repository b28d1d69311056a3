package commonerrors

import (
	"errors"
	"net/http"
)

var (
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrInvalidJWTSecret = errors.New("JWT_SECRET must be at least 32 bytes")
	ErrEmptyUUID        = errors.New("uuid cannot be empty")
)

var (
	ErrInvalidToken = NewDomainError(
		"INVALID_TOKEN",
		CategoryUnauthorized,
		http.StatusUnauthorized,
		"Invalid token",
	)

	ErrMissingAuthorization = NewDomainError(
		"MISSING_AUTHORIZATION",
		CategoryUnauthorized,
		http.StatusUnauthorized,
		"Authorization denied",
	)

	ErrInvalidPayload = NewDomainError(
		"INVALID_JSON",
		CategoryValidation,
		http.StatusBadRequest,
		"invalid json",
	)

	ErrInternalError = NewDomainError(
		"INTERNAL_ERROR",
		CategoryInternal,
		http.StatusInternalServerError,
		"internal server error",
	)

	ErrDatabaseError = NewDomainError(
		"DATABASE_ERROR",
		CategoryInternal,
		http.StatusInternalServerError,
		"database operation failed",
	)
)
