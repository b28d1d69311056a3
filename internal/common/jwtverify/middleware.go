package jwtverify

import (
	"context"
	"net/http"

	commonerrors "github.com/AlibekovAA/notes-api/internal/common/errors"
	commonhttp "github.com/AlibekovAA/notes-api/internal/common/http"
	"github.com/AlibekovAA/notes-api/internal/common/logger"
	"github.com/AlibekovAA/notes-api/internal/observability/metrics"
)

type contextKey string

const claimsKey contextKey = "jwt_claims"

// AuthorizationHeader carries the bare token; no "Bearer " scheme is expected.
const AuthorizationHeader = "Authorization"

type TokenVerifier interface {
	Verify(tokenString string) (Claims, error)
}

func Middleware(verifier TokenVerifier, log *logger.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			metrics.JWTValidationsTotal.Inc()

			token := r.Header.Get(AuthorizationHeader)
			if token == "" {
				metrics.JWTValidationsFailed.WithLabelValues("missing").Inc()
				log.WithFields(ctx, logger.Fields{
					"path":   r.URL.Path,
					"action": "auth_missing_token",
				}).Warn("auth denied: missing authorization header")
				commonhttp.HandleError(w, r, commonerrors.ErrMissingAuthorization, log)
				return
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				metrics.JWTValidationsFailed.WithLabelValues("invalid").Inc()
				log.WithFields(ctx, logger.Fields{
					"path":   r.URL.Path,
					"action": "auth_invalid_token",
				}).Warnf("auth denied: %v", err)
				commonhttp.HandleError(w, r, commonerrors.ErrInvalidToken, log)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(ctx, claims)))
		})
	}
}

func WithClaims(ctx context.Context, claims Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

func FromContext(ctx context.Context) (Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(Claims)
	return claims, ok && claims.UserID != ""
}
