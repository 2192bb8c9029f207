// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides the HTTP cross-cutting layers and response
helpers.

Outer chain (applied to every route by the router):

  - SecureHeaders: restrictive response headers
  - CORS: permissive cross-origin policy with preflight handling
  - RateLimiter: fixed window, per client IP, RateLimit-* headers
  - MaxBody: 10 KB request body cap

Per-route:

  - WithLogging: request/completion logs with a request id
  - RequireAuth: bearer credential -> Identity in the request context
  - RequireAdmin: store-backed admin gate, inside RequireAuth

Plus the JSON helpers (JSONResponse, ErrorResponse, ParseJSONBody) the
handlers use for every response.
*/
package middleware
