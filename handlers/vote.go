// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/linkvote/middleware"
	"github.com/danielhkuo/linkvote/models"
	"github.com/danielhkuo/linkvote/store"
	"github.com/danielhkuo/linkvote/voting"
)

type VotingHandler struct {
	st store.Store
}

func NewVotingHandler(st store.Store) *VotingHandler {
	return &VotingHandler{st: st}
}

// CastVote handles POST /api/vote
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Bearer credential required")
		return
	}

	// Parse request
	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.CandidateID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "candidateId is required")
		return
	}

	// The subject comes from the verified credential, never the body.
	res, err := voting.CastVote(r.Context(), h.st, id.Subject, id.Name, req.CandidateID, req.LinkedInProfile)
	if err != nil {
		slog.Error("cast vote failed", "error", err, "subject", id.Subject)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if res.Outcome != voting.Accepted {
		middleware.ErrorResponse(w, http.StatusBadRequest, res.Message)
		return
	}

	slog.Info("vote recorded", "subject", id.Subject, "candidate_id", req.CandidateID)

	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{
		Message: res.Message,
	})
}
