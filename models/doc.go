// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the request, response, and domain types shared by the
handlers and the store.

Domain types:

  - Candidate: a vote target with a monotonically non-decreasing tally
  - Voter: one record per authenticated subject; the record key IS the
    subject identifier, so "record exists" and "has voted" are the same fact

The JSON field names match what the frontend consumes (candidateId, votedAt,
and so on).
*/
package models
