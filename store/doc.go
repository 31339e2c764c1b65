// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store defines the persistence contract for Pollboard.

Two implementations exist:

  - store/postgres: production backend on database/sql + lib/pq
  - store/inmemory: mutex-guarded map store for tests and development

Handlers depend only on the Store interface. Vote counting is the one
operation with a concurrency requirement: IncrementVote must be an
atomic read-modify-write at the store level, so concurrent votes on the
same choice never lose updates. The postgres backend uses a single
conditional UPDATE; the in-memory backend holds its write lock.
*/
package store
