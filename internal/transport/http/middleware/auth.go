package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	jwtinfra "github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/infrastructure/jwt"
)

var errNoBearer = errors.New("no bearer token")

type contextKey string

const ClaimsKey contextKey = "claims"

// Auth returns middleware that validates the Bearer JWT and injects claims into context.
func Auth(provider *jwtinfra.Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := bearerClaims(provider, r)
			if err != nil {
				writeStatusJSON(w, http.StatusUnauthorized, "missing or invalid bearer token")
				return
			}
			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth injects claims when a valid Bearer token is present and lets the
// request through either way. Guarded public routes use it so authenticated
// staff can be recognized by the rate limiter without locking guests out.
func OptionalAuth(provider *jwtinfra.Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if claims, err := bearerClaims(provider, r); err == nil {
				r = r.WithContext(context.WithValue(r.Context(), ClaimsKey, claims))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerClaims(provider *jwtinfra.Provider, r *http.Request) (*jwtinfra.Claims, error) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, errNoBearer
	}
	return provider.Verify(strings.TrimPrefix(authHeader, "Bearer "))
}

// ClaimsFromContext extracts JWT claims from the request context.
func ClaimsFromContext(ctx context.Context) (*jwtinfra.Claims, bool) {
	c, ok := ctx.Value(ClaimsKey).(*jwtinfra.Claims)
	return c, ok
}
