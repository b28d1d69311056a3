package http

import (
	"strings"

	"github.com/google/uuid"

	commonerrors "github.com/AlibekovAA/notes-api/internal/common/errors"
)

func ValidateUUID(s string) error {
	if s == "" {
		return commonerrors.ErrEmptyUUID
	}
	_, err := uuid.Parse(s)
	return err
}

// ExtractIDFromPath returns the single path segment that follows prefix.
// "/api/notes/abc" with prefix "/api/notes/" yields "abc"; deeper paths are rejected.
func ExtractIDFromPath(path, prefix string) (string, bool) {
	if !strings.HasPrefix(path, prefix) {
		return "", false
	}

	remaining := strings.TrimSuffix(strings.TrimPrefix(path, prefix), "/")
	if remaining == "" || strings.Contains(remaining, "/") {
		return "", false
	}

	return remaining, true
}
