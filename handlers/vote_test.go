// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/linkvote/middleware"
	"github.com/danielhkuo/linkvote/models"
	"github.com/danielhkuo/linkvote/store"
	"github.com/danielhkuo/linkvote/testutil"
)

// castVote sends a vote request through the auth middleware, the way the
// router wires it.
func castVote(st store.Store, headers map[string]string, body interface{}) *httptest.ResponseRecorder {
	tokens := testutil.NewTokens()
	handler := middleware.RequireAuth(tokens, NewVotingHandler(st).CastVote)
	req := testutil.MakeRequest("POST", "/api/vote", body, headers)
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestCastVoteRequiresAuth(t *testing.T) {
	st := testutil.NewStore(t)
	testutil.SeedCandidate(t, st, "alice", "Alice")

	w := castVote(st, nil, models.VoteRequest{CandidateID: "alice"})
	testutil.AssertStatus(t, w, http.StatusUnauthorized)

	// No store mutation on the 401 path.
	voters, _ := st.ListVoters(context.Background())
	if len(voters) != 0 {
		t.Errorf("Expected no voters, got %d", len(voters))
	}
	c, _ := st.GetCandidate(context.Background(), "alice")
	if c.Votes != 0 {
		t.Errorf("Expected 0 votes, got %d", c.Votes)
	}
}

func TestCastVoteMissingCandidateID(t *testing.T) {
	st := testutil.NewStore(t)
	tokens := testutil.NewTokens()
	token := testutil.MintToken(t, tokens, "u1", "User One")

	w := castVote(st, testutil.AuthHeader(token), models.VoteRequest{})
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != "candidateId is required" {
		t.Errorf("Unexpected message: %q", resp.Message)
	}
}

func TestCastVoteInvalidJSON(t *testing.T) {
	st := testutil.NewStore(t)
	tokens := testutil.NewTokens()
	token := testutil.MintToken(t, tokens, "u1", "User One")

	handler := middleware.RequireAuth(tokens, NewVotingHandler(st).CastVote)
	req := httptest.NewRequest("POST", "/api/vote", strings.NewReader("{not json"))
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestCastVoteSuccess(t *testing.T) {
	st := testutil.NewStore(t)
	testutil.SeedCandidate(t, st, "alice", "Alice")
	tokens := testutil.NewTokens()
	token := testutil.MintToken(t, tokens, "u1", "User One")

	w := castVote(st, testutil.AuthHeader(token), models.VoteRequest{
		CandidateID:     "alice",
		LinkedInProfile: "https://linkedin.com/in/u1",
	})
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.VoteResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message == "" {
		t.Error("Expected a confirmation message")
	}

	voters, _ := st.ListVoters(context.Background())
	if len(voters) != 1 {
		t.Fatalf("Expected 1 voter, got %d", len(voters))
	}
	// Name and subject come from the credential, profile from the body.
	v := voters[0]
	if v.Subject != "u1" || v.Name != "User One" || v.Profile != "https://linkedin.com/in/u1" {
		t.Errorf("Unexpected voter record: %+v", v)
	}
}

func TestCastVoteAlreadyVoted(t *testing.T) {
	st := testutil.NewStore(t)
	testutil.SeedCandidate(t, st, "alice", "Alice")
	testutil.SeedCandidate(t, st, "bob", "Bob")
	tokens := testutil.NewTokens()
	token := testutil.MintToken(t, tokens, "u1", "User One")

	w := castVote(st, testutil.AuthHeader(token), models.VoteRequest{CandidateID: "alice"})
	testutil.AssertStatus(t, w, http.StatusOK)

	w = castVote(st, testutil.AuthHeader(token), models.VoteRequest{CandidateID: "bob"})
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if !strings.Contains(resp.Message, "already voted") {
		t.Errorf("Expected already-voted reason, got %q", resp.Message)
	}

	alice, _ := st.GetCandidate(context.Background(), "alice")
	bob, _ := st.GetCandidate(context.Background(), "bob")
	if alice.Votes != 1 || bob.Votes != 0 {
		t.Errorf("Expected alice=1 bob=0, got alice=%d bob=%d", alice.Votes, bob.Votes)
	}
}

func TestCastVoteUnknownCandidate(t *testing.T) {
	st := testutil.NewStore(t)
	tokens := testutil.NewTokens()
	token := testutil.MintToken(t, tokens, "u1", "User One")

	w := castVote(st, testutil.AuthHeader(token), models.VoteRequest{CandidateID: "ghost"})
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if !strings.Contains(resp.Message, "not found") {
		t.Errorf("Expected not-found reason, got %q", resp.Message)
	}
}
