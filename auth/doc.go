// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth mints and verifies the application's bearer credentials.

Credentials are HS256 JWTs issued after a successful LinkedIn login:

	tokens := auth.NewTokens(secret, 24*time.Hour)
	raw, err := tokens.Mint(auth.Identity{Subject: sub, Name: name, Email: email})
	id, err := tokens.Verify(raw)

The JWT subject is the provider's OIDC sub, which is also the key of the
voter record — one identifier scheme everywhere. The admin flag is not a
token claim; it is store state, so a grant takes effect on the next request
without re-login.
*/
package auth
