// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package linkedin is the thin OAuth bridge to the identity provider.

It owns exactly three interactions: building the authorization redirect URL,
exchanging the callback code for an access token (delegated to
golang.org/x/oauth2), and fetching the OIDC userinfo profile. The profile's
sub field is the canonical subject identifier used everywhere else.
*/
package linkedin
