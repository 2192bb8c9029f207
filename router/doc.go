// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires routes to handlers and applies the middleware chain.

Routes use Go 1.22+ method patterns. Every route passes through the outer
chain (security headers, CORS, rate limiting, body cap); authenticated routes
additionally go through RequireAuth, and /make-admin through RequireAdmin.
*/
package router
