// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the LinkVote API server.

LinkVote is a single-election voting backend: users authenticate through
LinkedIn, receive an application credential, and cast exactly one vote for a
seeded candidate. The at-most-one-vote guarantee is enforced by a store
transaction keyed on the verified identity, not by any in-process state.

# Starting the Server

	TOKEN_SECRET=... LINKEDIN_CLIENT_ID=... LINKEDIN_CLIENT_SECRET=... \
	LINKEDIN_REDIRECT_URI=... go run .

A .env file is loaded if present. SQLite is the default store; set
DATABASE_TYPE=postgres and DATABASE_URL for PostgreSQL.

# Configuration

Required settings:

  - TOKEN_SECRET: signs application credentials
  - LINKEDIN_CLIENT_ID / LINKEDIN_CLIENT_SECRET / LINKEDIN_REDIRECT_URI

Optional settings:

  - PORT (-p): listen port (default: 5000)
  - DATABASE_URL (-d), DATABASE_TYPE (-t)
  - TOKEN_TTL: credential lifetime (default: 24h)
  - SEED_FILE: candidate seed JSON, the out-of-band creation channel

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (oauth, vote, results, admin)
  - router: Route definitions using Go 1.22+ routing, middleware chain
  - middleware: auth gates, CORS, security headers, rate limit, logging
  - voting: the cast-vote transaction
  - store: transactional persistence (memory, SQLite, PostgreSQL)
  - auth: credential minting and verification
  - linkedin: OAuth bridge to the identity provider
  - models: Request/response and domain types
  - config: Configuration parsing

See package documentation for each component.
*/
package main
