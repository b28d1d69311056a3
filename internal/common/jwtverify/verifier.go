package jwtverify

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/AlibekovAA/notes-api/internal/common/clock"
	commonerrors "github.com/AlibekovAA/notes-api/internal/common/errors"
)

// Claims is the identity carried by a verified access token.
type Claims struct {
	UserID    string
	Username  string
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenClaims is the wire form signed by the issuer.
type TokenClaims struct {
	jwt.RegisteredClaims
	Username string `json:"usr,omitempty"`
}

var errMissingSubject = errors.New("missing sub claim")

type Verifier struct {
	secret []byte
	clock  clock.Clock
}

func NewVerifier(secret string, clk clock.Clock) *Verifier {
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &Verifier{
		secret: []byte(secret),
		clock:  clk,
	}
}

// Verify returns ErrInvalidToken for every failure: malformed input, wrong
// signing method, signature mismatch, missing subject and expiry look the same
// to the caller. The underlying reason is attached as the cause for logging.
func (v *Verifier) Verify(tokenString string) (Claims, error) {
	claims, err := v.parse(tokenString)
	if err != nil {
		return Claims{}, commonerrors.ErrInvalidToken.WithCause(err)
	}
	return claims, nil
}

func (v *Verifier) parse(tokenString string) (Claims, error) {
	var tc TokenClaims
	parsed, err := jwt.ParseWithClaims(
		tokenString,
		&tc,
		func(*jwt.Token) (any, error) { return v.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.clock.Now),
	)
	if err != nil {
		return Claims{}, err
	}
	if !parsed.Valid {
		return Claims{}, commonerrors.ErrInvalidToken
	}
	if tc.Subject == "" {
		return Claims{}, errMissingSubject
	}

	claims := Claims{
		UserID:   tc.Subject,
		Username: tc.Username,
		TokenID:  tc.ID,
	}
	if tc.IssuedAt != nil {
		claims.IssuedAt = tc.IssuedAt.Time
	}
	if tc.ExpiresAt != nil {
		claims.ExpiresAt = tc.ExpiresAt.Time
	}
	return claims, nil
}
