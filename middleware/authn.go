// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/linkvote/auth"
	"github.com/danielhkuo/linkvote/store"
)

// TokenVerifier validates a raw bearer credential.
type TokenVerifier interface {
	Verify(raw string) (auth.Identity, error)
}

type contextKey int

const identityKey contextKey = iota

// IdentityFrom returns the verified identity RequireAuth attached to the
// request context.
func IdentityFrom(ctx context.Context) (auth.Identity, bool) {
	id, ok := ctx.Value(identityKey).(auth.Identity)
	return id, ok
}

// RequireAuth verifies the Authorization bearer credential and attaches the
// resulting identity to the request context. Missing or invalid credentials
// get 401; the verification detail is logged, never returned.
func RequireAuth(v TokenVerifier, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			ErrorResponse(w, http.StatusUnauthorized, "Bearer credential required")
			return
		}

		id, err := v.Verify(raw)
		if err != nil {
			slog.Info("credential rejected", "error", err)
			ErrorResponse(w, http.StatusUnauthorized, "Invalid credential")
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, id)
		next(w, r.WithContext(ctx))
	}
}

// RequireAdmin gates a handler on the store's admin set. It must run inside
// RequireAuth. The admin flag is store state, not a token claim, so a fresh
// grant is visible on the next request.
func RequireAdmin(st store.Store, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := IdentityFrom(r.Context())
		if !ok {
			ErrorResponse(w, http.StatusUnauthorized, "Bearer credential required")
			return
		}

		isAdmin, err := st.IsAdmin(r.Context(), id.Subject)
		if err != nil {
			slog.Error("failed to check admin claim", "error", err, "subject", id.Subject)
			ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		if !isAdmin {
			ErrorResponse(w, http.StatusForbidden, "Admin claim required")
			return
		}

		next(w, r)
	}
}
