// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package config loads server configuration from the environment.

Required settings:

  - TOKEN_SECRET: secret used to sign application credentials
  - LINKEDIN_CLIENT_ID, LINKEDIN_CLIENT_SECRET, LINKEDIN_REDIRECT_URI:
    LinkedIn OAuth application settings

Optional settings:

  - PORT (-p): listen port (default: 5000)
  - DATABASE_URL (-d): database location (default: file:linkvote.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - TOKEN_TTL: credential lifetime (default: 24h)
  - SEED_FILE: candidate seed JSON loaded at startup

CLI flags exist for the non-secret settings to ease local runs; secrets are
environment-only.
*/
package config
