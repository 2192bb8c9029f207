// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package voting implements the cast-vote transaction, the one invariant this
service owns: at most one vote per verified subject.

	res, err := voting.CastVote(ctx, st, subject, name, candidateID, profile)

Inside a single store transaction it checks for an existing voter record,
checks the candidate exists, then creates the record and increments the tally
as a unit. The rejection outcomes (AlreadyVoted, CandidateNotFound) abort the
transaction with zero persistent side effects and are returned as values;
only store failures come back as errors.
*/
package voting
