package jwtverify

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/AlibekovAA/notes-api/internal/common/clock"
	commonerrors "github.com/AlibekovAA/notes-api/internal/common/errors"
)

const testSecret = "0123456789abcdef0123456789abcdef"

var testNow = time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims jwt.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func validClaims() TokenClaims {
	return TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ID:        "jti-1",
			IssuedAt:  jwt.NewNumericDate(testNow),
			ExpiresAt: jwt.NewNumericDate(testNow.Add(time.Hour)),
		},
		Username: "alice",
	}
}

func TestVerifier_Valid(t *testing.T) {
	v := NewVerifier(testSecret, clock.NewMockClock(testNow))
	token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims())

	claims, err := v.Verify(token)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if claims.UserID != "user-1" || claims.Username != "alice" || claims.TokenID != "jti-1" {
		t.Errorf("unexpected claims: %+v", claims)
	}
	if !claims.ExpiresAt.Equal(testNow.Add(time.Hour)) {
		t.Errorf("expected exp %v, got %v", testNow.Add(time.Hour), claims.ExpiresAt)
	}
}

func TestVerifier_Rejections(t *testing.T) {
	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(testNow.Add(-time.Second))

	noSub := validClaims()
	noSub.Subject = ""

	noExp := validClaims()
	noExp.ExpiresAt = nil

	cases := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not.a.jwt"},
		{"expired", signToken(t, jwt.SigningMethodHS256, []byte(testSecret), expired)},
		{"wrong secret", signToken(t, jwt.SigningMethodHS256, []byte("another-secret-another-secret-xx"), validClaims())},
		{"wrong method", signToken(t, jwt.SigningMethodHS512, []byte(testSecret), validClaims())},
		{"none method", signToken(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, validClaims())},
		{"missing subject", signToken(t, jwt.SigningMethodHS256, []byte(testSecret), noSub)},
		{"missing expiration", signToken(t, jwt.SigningMethodHS256, []byte(testSecret), noExp)},
	}

	v := NewVerifier(testSecret, clock.NewMockClock(testNow))
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := v.Verify(tc.token)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, commonerrors.ErrInvalidToken) {
				t.Errorf("expected ErrInvalidToken, got %v", err)
			}
			de, ok := commonerrors.AsDomainError(err)
			if !ok || de.Message() != "Invalid token" || de.HTTPStatus() != 401 {
				t.Errorf("expected uniform 401 Invalid token, got %v", err)
			}
		})
	}
}

func TestVerifier_ExpiresWithClock(t *testing.T) {
	clk := clock.NewMockClock(testNow)
	v := NewVerifier(testSecret, clk)
	token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims())

	if _, err := v.Verify(token); err != nil {
		t.Fatalf("expected valid token, got %v", err)
	}

	clk.Advance(time.Hour + time.Second)

	if _, err := v.Verify(token); !errors.Is(err, commonerrors.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken after expiry, got %v", err)
	}
}
