// Package web holds the JSON response helpers and request middleware
// shared by every API handler.
package web

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/MrJamesThe3rd/homeledger/internal/auth"
)

type contextKey int

const claimsKey contextKey = iota

// errorResponse is the uniform error body. Clients surface Message
// verbatim.
type errorResponse struct {
	Message string `json:"message"`
}

// Respond writes v as JSON with the given status.
func Respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Error writes a JSON error body with the given status.
func Error(w http.ResponseWriter, status int, message string) {
	Respond(w, status, errorResponse{Message: message})
}

// ClaimsFrom returns the authenticated claims stored by Authenticator.
// Nil outside an authenticated route.
func ClaimsFrom(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsKey).(*auth.Claims)
	return claims
}

// Authenticator verifies the bearer token on every request and stores
// the parsed claims in the request context.
func Authenticator(svc *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				Error(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims, err := svc.Authenticate(r.Context(), token)
			if err != nil {
				Error(w, http.StatusUnauthorized, "token is invalid or expired")
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
		})
	}
}

// RequireWriter blocks viewers from mutating routes. Read routes stay
// open to every role.
func RequireWriter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFrom(r.Context())
		if claims == nil || claims.Role.ReadOnly() {
			Error(w, http.StatusForbidden, auth.ReadOnlyMessage)
			return
		}

		next.ServeHTTP(w, r)
	})
}
