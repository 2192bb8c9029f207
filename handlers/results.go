// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/linkvote/middleware"
	"github.com/danielhkuo/linkvote/store"
)

type ResultsHandler struct {
	st store.Store
}

func NewResultsHandler(st store.Store) *ResultsHandler {
	return &ResultsHandler{st: st}
}

// ListCandidates handles GET /api/candidates
func (h *ResultsHandler) ListCandidates(w http.ResponseWriter, r *http.Request) {
	candidates, err := h.st.ListCandidates(r.Context())
	if err != nil {
		slog.Error("failed to list candidates", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, candidates)
}

// ListVoters handles GET /api/voters
func (h *ResultsHandler) ListVoters(w http.ResponseWriter, r *http.Request) {
	voters, err := h.st.ListVoters(r.Context())
	if err != nil {
		slog.Error("failed to list voters", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, voters)
}
