// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Candidates
CREATE TABLE IF NOT EXISTS candidate (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    votes INTEGER NOT NULL DEFAULT 0 CHECK (votes >= 0)
);

-- Voters. The primary key on subject is the single-vote enforcement:
-- one record per verified identity, created once, never mutated.
CREATE TABLE IF NOT EXISTS voter (
    subject TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    candidate_id TEXT NOT NULL REFERENCES candidate(id),
    profile TEXT NOT NULL DEFAULT '',
    voted_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_voter_candidate_id ON voter(candidate_id);

-- Admin claims
CREATE TABLE IF NOT EXISTS admin (
    subject TEXT PRIMARY KEY
);
`
