package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/AlibekovAA/notes-api/internal/common/clock"
	commoncrypto "github.com/AlibekovAA/notes-api/internal/common/crypto"
	"github.com/AlibekovAA/notes-api/internal/common/jwtverify"
	userdomain "github.com/AlibekovAA/notes-api/internal/user/domain"
)

// TokenIssuer signs HS256 access tokens that jwtverify.Verifier accepts when
// both share the same secret.
type TokenIssuer struct {
	jwtSecret      []byte
	idGenerator    commoncrypto.IDGenerator
	clock          clock.Clock
	accessTokenTTL time.Duration
}

func NewTokenIssuer(
	jwtSecret string,
	idGenerator commoncrypto.IDGenerator,
	accessTokenTTL time.Duration,
	clk clock.Clock,
) *TokenIssuer {
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &TokenIssuer{
		jwtSecret:      []byte(jwtSecret),
		idGenerator:    idGenerator,
		clock:          clk,
		accessTokenTTL: accessTokenTTL,
	}
}

func (ti *TokenIssuer) Issue(user userdomain.User) (string, error) {
	jti, err := ti.idGenerator.NewID()
	if err != nil {
		return "", err
	}

	now := ti.clock.Now()
	claims := jwtverify.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   string(user.ID),
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ti.accessTokenTTL)),
		},
		Username: user.Username,
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := t.SignedString(ti.jwtSecret)
	if err != nil {
		return "", err
	}

	incrementAccessTokensIssued()
	return tokenString, nil
}
