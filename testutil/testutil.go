// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/linkvote/auth"
	"github.com/danielhkuo/linkvote/models"
	"github.com/danielhkuo/linkvote/store"
)

// TestTokenSecret signs credentials in tests.
const TestTokenSecret = "test-token-secret"

// NewStore returns a fresh in-memory store.
func NewStore(t *testing.T) *store.MemoryStore {
	t.Helper()
	return store.NewMemoryStore()
}

// NewTokens returns a token minter/verifier with the test secret.
func NewTokens() *auth.Tokens {
	return auth.NewTokens(TestTokenSecret, time.Hour)
}

// SeedCandidate creates a candidate with a zero tally.
func SeedCandidate(t *testing.T, st store.Store, id, name string) {
	t.Helper()
	if err := st.PutCandidate(context.Background(), models.Candidate{ID: id, Name: name}); err != nil {
		t.Fatalf("Failed to seed candidate %s: %v", id, err)
	}
}

// MintToken mints a valid bearer credential for the given subject.
func MintToken(t *testing.T, tokens *auth.Tokens, subject, name string) string {
	t.Helper()
	raw, err := tokens.Mint(auth.Identity{Subject: subject, Name: name, Email: subject + "@example.com"})
	if err != nil {
		t.Fatalf("Failed to mint token: %v", err)
	}
	return raw
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AuthHeader returns the header map for a bearer credential.
func AuthHeader(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
