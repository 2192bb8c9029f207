// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/linkvote/auth"
	"github.com/danielhkuo/linkvote/store"
)

func newTestTokens() *auth.Tokens {
	return auth.NewTokens("test-secret", time.Hour)
}

func withIdentity(ctx context.Context, id auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

func TestRequireAuthMissingHeader(t *testing.T) {
	called := false
	handler := RequireAuth(newTestTokens(), func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest("POST", "/api/vote", nil)
	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401, got %d", w.Code)
	}
	if called {
		t.Error("Handler should not run without a credential")
	}
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	handler := RequireAuth(newTestTokens(), func(w http.ResponseWriter, r *http.Request) {
		t.Error("Handler should not run")
	})

	for _, header := range []string{"Bearer", "Bearer ", "Basic dXNlcjpwYXNz", "garbage"} {
		req := httptest.NewRequest("POST", "/api/vote", nil)
		req.Header.Set("Authorization", header)
		w := httptest.NewRecorder()
		handler(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("Header %q: expected 401, got %d", header, w.Code)
		}
	}
}

func TestRequireAuthInvalidToken(t *testing.T) {
	handler := RequireAuth(newTestTokens(), func(w http.ResponseWriter, r *http.Request) {
		t.Error("Handler should not run")
	})

	req := httptest.NewRequest("POST", "/api/vote", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401, got %d", w.Code)
	}
}

func TestRequireAuthAttachesIdentity(t *testing.T) {
	tokens := newTestTokens()
	raw, err := tokens.Mint(auth.Identity{Subject: "u1", Name: "User One"})
	if err != nil {
		t.Fatalf("Mint failed: %v", err)
	}

	var got auth.Identity
	handler := RequireAuth(tokens, func(w http.ResponseWriter, r *http.Request) {
		id, ok := IdentityFrom(r.Context())
		if !ok {
			t.Error("Expected identity in context")
		}
		got = id
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("POST", "/api/vote", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if got.Subject != "u1" || got.Name != "User One" {
		t.Errorf("Unexpected identity: %+v", got)
	}
}

func TestRequireAdminForbidsNonAdmin(t *testing.T) {
	st := store.NewMemoryStore()
	handler := RequireAdmin(st, func(w http.ResponseWriter, r *http.Request) {
		t.Error("Handler should not run for non-admin")
	})

	req := httptest.NewRequest("POST", "/make-admin", nil)
	ctx := withIdentity(req.Context(), auth.Identity{Subject: "u1"})
	w := httptest.NewRecorder()
	handler(w, req.WithContext(ctx))

	if w.Code != http.StatusForbidden {
		t.Fatalf("Expected 403, got %d", w.Code)
	}
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	st := store.NewMemoryStore()
	if err := st.GrantAdmin(context.Background(), "u1"); err != nil {
		t.Fatalf("GrantAdmin failed: %v", err)
	}

	called := false
	handler := RequireAdmin(st, func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("POST", "/make-admin", nil)
	ctx := withIdentity(req.Context(), auth.Identity{Subject: "u1"})
	w := httptest.NewRecorder()
	handler(w, req.WithContext(ctx))

	if w.Code != http.StatusOK || !called {
		t.Fatalf("Expected admin to pass, got %d (called=%v)", w.Code, called)
	}
}

func TestRequireAdminWithoutIdentity(t *testing.T) {
	st := store.NewMemoryStore()
	handler := RequireAdmin(st, func(w http.ResponseWriter, r *http.Request) {
		t.Error("Handler should not run")
	})

	req := httptest.NewRequest("POST", "/make-admin", nil)
	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401, got %d", w.Code)
	}
}
