// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers provides the HTTP request handlers.

Handlers by concern:

  - AuthHandler: LinkedIn login redirect and OAuth callback, credential minting
  - VotingHandler: the cast-vote endpoint
  - ResultsHandler: candidate and voter list reads
  - AdminHandler: admin claim grants

Each handler receives its dependencies (store, token minter, OAuth bridge)
through its constructor; there is no package-level state. Domain rejections
from the voting transaction map to 400 with the rejection's message; every
other failure maps to a generic 500 with the detail logged, never returned.
*/
package handlers
