// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/linkvote/models"
)

// SQLStore backs the Store contract with SQLite (default) or PostgreSQL.
// Transactions run at serializable isolation; busy/serialization failures are
// mapped to ErrConflict and retried by RunTransaction.
type SQLStore struct {
	db *sql.DB
}

// OpenSQL opens the database for the given type ("sqlite" or "postgres") and
// bootstraps the schema.
func OpenSQL(databaseType, databaseURL string) (*SQLStore, error) {
	var driver string
	switch databaseType {
	case "sqlite":
		driver = "sqlite"
	case "postgres":
		driver = "postgres"
	default:
		return nil, fmt.Errorf("unsupported database type %q", databaseType)
	}

	db, err := sql.Open(driver, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if driver == "sqlite" {
		// Writes are serialized by SQLite anyway; a single connection avoids
		// spurious SQLITE_BUSY between pooled connections.
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := CreateSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLStore{db: db}, nil
}

// sqlTx adapts a database transaction to the Tx view. Unlike the memory
// store there is no write buffering here: the database transaction itself is
// the buffer, and rolling back discards everything.
type sqlTx struct {
	tx *sql.Tx
}

func (t *sqlTx) GetVoter(subject string) (models.Voter, error) {
	var v models.Voter
	var votedAt sql.NullTime
	err := t.tx.QueryRow(`
		SELECT subject, name, candidate_id, profile, voted_at FROM voter WHERE subject = $1
	`, subject).Scan(&v.Subject, &v.Name, &v.CandidateID, &v.Profile, &votedAt)
	if err == sql.ErrNoRows {
		return models.Voter{}, ErrNotFound
	}
	if err != nil {
		return models.Voter{}, err
	}
	if votedAt.Valid {
		v.VotedAt = &votedAt.Time
	}
	return v, nil
}

func (t *sqlTx) GetCandidate(id string) (models.Candidate, error) {
	var c models.Candidate
	err := t.tx.QueryRow(`
		SELECT id, name, votes FROM candidate WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.Votes)
	if err == sql.ErrNoRows {
		return models.Candidate{}, ErrNotFound
	}
	if err != nil {
		return models.Candidate{}, err
	}
	return c, nil
}

func (t *sqlTx) PutVoter(v models.Voter) error {
	// voted_at comes from the database clock at insert time.
	_, err := t.tx.Exec(`
		INSERT INTO voter (subject, name, candidate_id, profile, voted_at)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP)
	`, v.Subject, v.Name, v.CandidateID, v.Profile)
	return err
}

func (t *sqlTx) IncrementVotes(candidateID string) error {
	// Relative update, never a read-then-write of a cached count.
	res, err := t.tx.Exec(`
		UPDATE candidate SET votes = votes + 1 WHERE id = $1
	`, candidateID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLStore) RunTransaction(ctx context.Context, fn TxFunc) error {
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err := s.runOnce(ctx, fn)
		if err == nil || !errors.Is(err, ErrConflict) {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * 10 * time.Millisecond):
		}
	}
	return fmt.Errorf("transaction retries exhausted: %w", ErrConflict)
}

func (s *SQLStore) runOnce(ctx context.Context, fn TxFunc) error {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return asConflict(err)
	}
	defer tx.Rollback()

	commit, err := fn(&sqlTx{tx: tx})
	if err != nil {
		return asConflict(err)
	}
	if !commit {
		return nil
	}
	if err := tx.Commit(); err != nil {
		return asConflict(err)
	}
	return nil
}

// asConflict maps driver-specific transient failures onto ErrConflict so the
// executor retries them: SQLITE_BUSY from sqlite, serialization_failure
// (40001) from postgres.
func asConflict(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	if strings.Contains(msg, "SQLITE_BUSY") ||
		strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "pq: could not serialize access") {
		return fmt.Errorf("%w: %s", ErrConflict, msg)
	}
	return err
}

func (s *SQLStore) GetCandidate(ctx context.Context, id string) (models.Candidate, error) {
	var c models.Candidate
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, votes FROM candidate WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.Votes)
	if err == sql.ErrNoRows {
		return models.Candidate{}, ErrNotFound
	}
	if err != nil {
		return models.Candidate{}, err
	}
	return c, nil
}

func (s *SQLStore) ListCandidates(ctx context.Context) ([]models.Candidate, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, votes FROM candidate`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	candidates := []models.Candidate{}
	for rows.Next() {
		var c models.Candidate
		if err := rows.Scan(&c.ID, &c.Name, &c.Votes); err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

func (s *SQLStore) ListVoters(ctx context.Context) ([]models.Voter, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT subject, name, candidate_id, profile, voted_at FROM voter
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	voters := []models.Voter{}
	for rows.Next() {
		var v models.Voter
		var votedAt sql.NullTime
		if err := rows.Scan(&v.Subject, &v.Name, &v.CandidateID, &v.Profile, &votedAt); err != nil {
			return nil, err
		}
		if votedAt.Valid {
			v.VotedAt = &votedAt.Time
		}
		voters = append(voters, v)
	}
	return voters, rows.Err()
}

func (s *SQLStore) PutCandidate(ctx context.Context, c models.Candidate) error {
	// Renames an existing candidate but never touches its tally.
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO candidate (id, name, votes) VALUES ($1, $2, 0)
		ON CONFLICT (id) DO UPDATE SET name = excluded.name
	`, c.ID, c.Name)
	return err
}

func (s *SQLStore) IsAdmin(ctx context.Context, subject string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM admin WHERE subject = $1)
	`, subject).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (s *SQLStore) GrantAdmin(ctx context.Context, subject string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO admin (subject) VALUES ($1) ON CONFLICT (subject) DO NOTHING
	`, subject)
	return err
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
