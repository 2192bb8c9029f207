// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"errors"
	"time"

	"github.com/danielhkuo/linkvote/models"
	"github.com/danielhkuo/linkvote/store"
)

// Outcome classifies the result of a cast-vote attempt. Rejections are
// ordinary values, not errors: they decide the transaction's abort and the
// handler's response, and they never leave persistent side effects.
type Outcome int

const (
	Accepted Outcome = iota
	AlreadyVoted
	CandidateNotFound
)

// Result is what the handler reports back to the caller.
type Result struct {
	Outcome Outcome
	Message string
}

// txTimeout bounds the whole transaction, retries included.
const txTimeout = 5 * time.Second

// CastVote records one vote by subject for candidateID, atomically creating
// the voter record and incrementing the candidate's tally. The voter record
// is keyed by subject, so its existence is the "has voted" fact: two
// concurrent attempts by the same subject commit exactly once, and the loser
// observes AlreadyVoted (directly, or after its conflict retry sees the
// winner's record). A non-nil error means the store failed; the vote may be
// retried by the user.
func CastVote(ctx context.Context, st store.Store, subject, name, candidateID, profile string) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, txTimeout)
	defer cancel()

	var res Result
	err := st.RunTransaction(ctx, func(tx store.Tx) (bool, error) {
		_, err := tx.GetVoter(subject)
		if err == nil {
			res = Result{Outcome: AlreadyVoted, Message: "You have already voted"}
			return false, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return false, err
		}

		if _, err := tx.GetCandidate(candidateID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				res = Result{Outcome: CandidateNotFound, Message: "Candidate not found"}
				return false, nil
			}
			return false, err
		}

		if err := tx.PutVoter(models.Voter{
			Subject:     subject,
			Name:        name,
			CandidateID: candidateID,
			Profile:     profile,
		}); err != nil {
			return false, err
		}
		if err := tx.IncrementVotes(candidateID); err != nil {
			return false, err
		}

		res = Result{Outcome: Accepted, Message: "Vote recorded"}
		return true, nil
	})
	if err != nil {
		return Result{}, err
	}
	return res, nil
}
