// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"

	"github.com/danielhkuo/linkvote/models"
)

var (
	// ErrNotFound is returned by point reads when no record has the key.
	ErrNotFound = errors.New("store: not found")

	// ErrConflict marks a transient transaction conflict. The transaction
	// executor retries the whole body when it sees this; callers outside a
	// transaction only see it after retries are exhausted.
	ErrConflict = errors.New("store: transaction conflict")
)

// maxTxAttempts bounds transparent conflict retries inside RunTransaction.
const maxTxAttempts = 5

// Tx is the view a transaction body gets of the store. Reads observe a single
// consistent snapshot; writes are buffered and applied only if the body asks
// for a commit and the commit succeeds.
type Tx interface {
	GetVoter(subject string) (models.Voter, error)
	GetCandidate(id string) (models.Candidate, error)
	PutVoter(v models.Voter) error
	IncrementVotes(candidateID string) error
}

// TxFunc is a transaction body. It returns its decision rather than aborting
// through an error: commit=true with a nil error commits the buffered writes,
// anything else rolls them back. A returned error is a store failure, not a
// domain outcome.
type TxFunc func(tx Tx) (commit bool, err error)

// Store is the persistence contract. Both implementations (memory, SQL)
// provide snapshot-isolated transactions with abort-and-retry on write
// conflicts, so the voting logic never has to know which one it runs against.
type Store interface {
	// RunTransaction executes fn atomically, retrying transparently on
	// transient conflicts up to an internal bound.
	RunTransaction(ctx context.Context, fn TxFunc) error

	GetCandidate(ctx context.Context, id string) (models.Candidate, error)
	ListCandidates(ctx context.Context) ([]models.Candidate, error)
	ListVoters(ctx context.Context) ([]models.Voter, error)

	// PutCandidate creates or renames a candidate. It never resets an
	// existing tally; candidates are seeded out-of-band and never deleted.
	PutCandidate(ctx context.Context, c models.Candidate) error

	IsAdmin(ctx context.Context, subject string) (bool, error)
	GrantAdmin(ctx context.Context, subject string) error

	Close() error
}
