// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/danielhkuo/linkvote/models"
)

// MemoryStore is an in-memory Store. Transactions run under the store lock,
// which makes them trivially serializable; it exists so the voting logic and
// the handlers can be tested without a database, and doubles as a dev backend.
type MemoryStore struct {
	mu         sync.Mutex
	candidates map[string]models.Candidate
	voters     map[string]models.Voter
	admins     map[string]bool

	now func() time.Time

	// conflicts, when positive, fails that many commits with ErrConflict
	// before letting one through. Test hook for the retry path.
	conflicts int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		candidates: make(map[string]models.Candidate),
		voters:     make(map[string]models.Voter),
		admins:     make(map[string]bool),
		now:        time.Now,
	}
}

// FailCommits makes the next n commit attempts fail with a transient
// conflict, exercising the executor's retry loop.
func (s *MemoryStore) FailCommits(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conflicts = n
}

// memTx buffers writes until commit. Reads go straight to the committed maps,
// which is a consistent snapshot because the store lock is held for the whole
// transaction.
type memTx struct {
	s          *MemoryStore
	putVoters  []models.Voter
	increments map[string]int64
}

func (t *memTx) GetVoter(subject string) (models.Voter, error) {
	v, ok := t.s.voters[subject]
	if !ok {
		return models.Voter{}, ErrNotFound
	}
	return v, nil
}

func (t *memTx) GetCandidate(id string) (models.Candidate, error) {
	c, ok := t.s.candidates[id]
	if !ok {
		return models.Candidate{}, ErrNotFound
	}
	return c, nil
}

func (t *memTx) PutVoter(v models.Voter) error {
	t.putVoters = append(t.putVoters, v)
	return nil
}

func (t *memTx) IncrementVotes(candidateID string) error {
	if _, ok := t.s.candidates[candidateID]; !ok {
		return ErrNotFound
	}
	if t.increments == nil {
		t.increments = make(map[string]int64)
	}
	t.increments[candidateID]++
	return nil
}

func (s *MemoryStore) RunTransaction(ctx context.Context, fn TxFunc) error {
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := s.runOnce(fn)
		if err == nil || !errors.Is(err, ErrConflict) {
			return err
		}
	}
	return fmt.Errorf("transaction retries exhausted: %w", ErrConflict)
}

func (s *MemoryStore) runOnce(fn TxFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{s: s}
	commit, err := fn(tx)
	if err != nil {
		return err
	}
	if !commit {
		return nil
	}

	if s.conflicts > 0 {
		s.conflicts--
		return ErrConflict
	}

	// Apply buffered writes. The commit timestamp is assigned here, by the
	// store, not by the transaction body.
	committedAt := s.now()
	for _, v := range tx.putVoters {
		v.VotedAt = &committedAt
		s.voters[v.Subject] = v
	}
	for id, n := range tx.increments {
		c := s.candidates[id]
		c.Votes += n
		s.candidates[id] = c
	}
	return nil
}

func (s *MemoryStore) GetCandidate(ctx context.Context, id string) (models.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.candidates[id]
	if !ok {
		return models.Candidate{}, ErrNotFound
	}
	return c, nil
}

func (s *MemoryStore) ListCandidates(ctx context.Context) ([]models.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Candidate, 0, len(s.candidates))
	for _, c := range s.candidates {
		out = append(out, c)
	}
	return out, nil
}

func (s *MemoryStore) ListVoters(ctx context.Context) ([]models.Voter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Voter, 0, len(s.voters))
	for _, v := range s.voters {
		out = append(out, v)
	}
	return out, nil
}

func (s *MemoryStore) PutCandidate(ctx context.Context, c models.Candidate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.candidates[c.ID]; ok {
		existing.Name = c.Name
		s.candidates[c.ID] = existing
		return nil
	}
	c.Votes = 0
	s.candidates[c.ID] = c
	return nil
}

func (s *MemoryStore) IsAdmin(ctx context.Context, subject string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.admins[subject], nil
}

func (s *MemoryStore) GrantAdmin(ctx context.Context, subject string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.admins[subject] = true
	return nil
}

func (s *MemoryStore) Close() error { return nil }
