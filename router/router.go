// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"time"

	"github.com/danielhkuo/linkvote/auth"
	"github.com/danielhkuo/linkvote/handlers"
	"github.com/danielhkuo/linkvote/linkedin"
	"github.com/danielhkuo/linkvote/middleware"
	"github.com/danielhkuo/linkvote/store"
)

// Rate limit: 100 requests per 15 minutes per client.
const (
	rateLimit  = 100
	rateWindow = 15 * time.Minute
)

func New(st store.Store, tokens *auth.Tokens, li *linkedin.Client) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(li, tokens)
	votingHandler := handlers.NewVotingHandler(st)
	resultsHandler := handlers.NewResultsHandler(st)
	adminHandler := handlers.NewAdminHandler(st)

	// OAuth login flow
	mux.HandleFunc("GET /auth/linkedin", middleware.WithLogging(authHandler.Login))
	mux.HandleFunc("GET /auth/linkedin/callback", middleware.WithLogging(authHandler.Callback))

	// Voting and reads
	mux.HandleFunc("POST /api/vote",
		middleware.WithLogging(middleware.RequireAuth(tokens, votingHandler.CastVote)))
	mux.HandleFunc("GET /api/candidates", middleware.WithLogging(resultsHandler.ListCandidates))
	mux.HandleFunc("GET /api/voters",
		middleware.WithLogging(middleware.RequireAuth(tokens, resultsHandler.ListVoters)))

	// Admin operations
	mux.HandleFunc("POST /make-admin",
		middleware.WithLogging(middleware.RequireAuth(tokens, middleware.RequireAdmin(st, adminHandler.MakeAdmin))))

	// Liveness probe
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("linkvote API v1"))
	})

	// Cross-cutting chain, outermost first.
	limiter := middleware.NewRateLimiter(rateLimit, rateWindow)
	return middleware.SecureHeaders(
		middleware.CORS(
			limiter.Middleware(
				middleware.MaxBody(mux))))
}
