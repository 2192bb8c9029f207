// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/linkvote/auth"
	"github.com/danielhkuo/linkvote/linkedin"
)

const stateCookie = "oauth_state"

// callbackPage posts the minted credential to the window that opened the
// login popup, then closes itself.
var callbackPage = template.Must(template.New("callback").Parse(`<!DOCTYPE html>
<html>
<body>
<script>
if (window.opener) {
	window.opener.postMessage({ token: {{.Token}} }, "*");
}
window.close();
</script>
<p>Login complete. You can close this window.</p>
</body>
</html>
`))

type AuthHandler struct {
	li     *linkedin.Client
	tokens *auth.Tokens
}

func NewAuthHandler(li *linkedin.Client, tokens *auth.Tokens) *AuthHandler {
	return &AuthHandler{li: li, tokens: tokens}
}

// Login handles GET /auth/linkedin
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	state, err := randomState()
	if err != nil {
		slog.Error("failed to generate oauth state", "error", err)
		http.Error(w, "Authentication failed", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/auth/linkedin",
		MaxAge:   int((10 * time.Minute).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, h.li.AuthCodeURL(state), http.StatusFound)
}

// Callback handles GET /auth/linkedin/callback
func (h *AuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		http.Error(w, "Missing authorization code", http.StatusBadRequest)
		return
	}

	cookie, err := r.Cookie(stateCookie)
	if err != nil || cookie.Value == "" || cookie.Value != r.URL.Query().Get("state") {
		http.Error(w, "Invalid OAuth state", http.StatusBadRequest)
		return
	}

	profile, err := h.li.FetchProfile(r.Context(), code)
	if err != nil {
		slog.Error("linkedin profile fetch failed", "error", err)
		http.Error(w, "Authentication failed", http.StatusInternalServerError)
		return
	}

	token, err := h.tokens.Mint(auth.Identity{
		Subject: profile.Sub,
		Name:    profile.Name,
		Email:   profile.Email,
	})
	if err != nil {
		slog.Error("failed to mint credential", "error", err)
		http.Error(w, "Authentication failed", http.StatusInternalServerError)
		return
	}

	slog.Info("login completed", "subject", profile.Sub)

	// The page carries an inline script, so loosen the blanket CSP here.
	w.Header().Set("Content-Security-Policy", "default-src 'none'; script-src 'unsafe-inline'")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := callbackPage.Execute(w, struct{ Token string }{Token: token}); err != nil {
		slog.Error("failed to render callback page", "error", err)
	}
}

func randomState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate state: %w", err)
	}
	return hex.EncodeToString(b), nil
}
