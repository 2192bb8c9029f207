// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store provides the persistence contract and its two implementations.

# Transactions

The contract is built around one primitive:

	err := st.RunTransaction(ctx, func(tx store.Tx) (bool, error) {
		// reads see one consistent snapshot
		// writes are buffered until commit
		return true, nil // commit
	})

The body returns its decision instead of aborting through an error: (true,
nil) commits, (false, nil) rolls back cleanly, and a non-nil error is a store
failure. Transient conflicts (SQLITE_BUSY, postgres serialization failures)
are retried transparently up to a small bound, then surfaced wrapped in
ErrConflict.

# Implementations

MemoryStore runs transactions under a single lock and exists for tests and
local development. SQLStore runs them at serializable isolation against
SQLite (modernc.org/sqlite, CGo-free) or PostgreSQL (lib/pq), selected by
DATABASE_TYPE. Both assign the voter commit timestamp themselves; callers
never supply it.
*/
package store
