package crypto

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/AlibekovAA/notes-api/internal/common/constants"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) bool
}

// BcryptHasher salts every call; the salt and cost are embedded in the hash.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = constants.DefaultBcryptCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports false for malformed hashes as well as mismatches.
func (h *BcryptHasher) Verify(password string, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
