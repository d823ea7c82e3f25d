// Package docstore abstracts the document store the allocation protocol runs
// against: point lookups, filtered scans, unique inserts, and a single
// conditional-write primitive (compare-and-set). All mutual exclusion the
// protocol needs is pushed through this interface; there is no in-process
// locking above it.
package docstore

import (
	"context"

	"github.com/google/uuid"
)

// Filter is an equality match over column values.
type Filter map[string]any

type FindOptions struct {
	OrderBy string // e.g. "created_at DESC"
	Limit   int    // 0 means no limit
}

type Store interface {
	// Get loads the document with the given id into dest.
	// Missing documents surface as infra.KindNotFound.
	Get(ctx context.Context, table string, id uuid.UUID, dest any) error

	// Find loads all documents matching filter into dest (a pointer to a
	// slice), applying sort and limit.
	Find(ctx context.Context, table string, filter Filter, opts FindOptions, dest any) error

	// InsertUnique inserts a document. Violating a declared unique key
	// surfaces as infra.KindDuplicateKey. uniqueKey names the fields the
	// constraint covers; backends that enforce uniqueness declaratively
	// (Postgres) may ignore it.
	InsertUnique(ctx context.Context, table string, row map[string]any, uniqueKey []string) error

	// CompareAndSet writes field = next iff the stored value is still
	// exactly expected. Returns true iff the match-and-write happened
	// atomically. A missing document is reported as false, not an error.
	CompareAndSet(ctx context.Context, table string, id uuid.UUID, field string, expected, next any) (bool, error)

	// Increment adds delta to a numeric field unconditionally.
	Increment(ctx context.Context, table string, id uuid.UUID, field string, delta int64) error

	// Update replaces the given fields unconditionally.
	Update(ctx context.Context, table string, id uuid.UUID, fields map[string]any) error

	// Delete removes the document. Missing documents surface as
	// infra.KindNotFound.
	Delete(ctx context.Context, table string, id uuid.UUID) error
}
