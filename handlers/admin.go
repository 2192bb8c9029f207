// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/linkvote/middleware"
	"github.com/danielhkuo/linkvote/models"
	"github.com/danielhkuo/linkvote/store"
)

type AdminHandler struct {
	st store.Store
}

func NewAdminHandler(st store.Store) *AdminHandler {
	return &AdminHandler{st: st}
}

// MakeAdmin handles POST /make-admin
func (h *AdminHandler) MakeAdmin(w http.ResponseWriter, r *http.Request) {
	var req models.MakeAdminRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.UID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "uid is required")
		return
	}

	if err := h.st.GrantAdmin(r.Context(), req.UID); err != nil {
		slog.Error("failed to grant admin claim", "error", err, "uid", req.UID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	grantedBy := "unknown"
	if id, ok := middleware.IdentityFrom(r.Context()); ok {
		grantedBy = id.Subject
	}
	slog.Info("admin claim granted", "uid", req.UID, "granted_by", grantedBy)

	middleware.JSONResponse(w, http.StatusOK, models.MakeAdminResponse{
		Message: "Admin claim granted",
	})
}
