package docstore

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"needboard/internal/infra"

	"github.com/google/uuid"
)

// MemoryStore is a mutex-guarded in-memory backend with the same observable
// semantics as the Postgres backend, including unique keys and atomic
// compare-and-set. Used by unit tests and local runs without a database.
type MemoryStore struct {
	mu         sync.Mutex
	tables     map[string]map[uuid.UUID]map[string]any
	uniqueKeys map[string][][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tables:     make(map[string]map[uuid.UUID]map[string]any),
		uniqueKeys: make(map[string][][]string),
	}
}

// DeclareUniqueKey registers a unique constraint the way a migration would.
func (s *MemoryStore) DeclareUniqueKey(table string, fields ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uniqueKeys[table] = append(s.uniqueKeys[table], fields)
}

func (s *MemoryStore) Get(_ context.Context, table string, id uuid.UUID, dest any) error {
	s.mu.Lock()
	row, ok := s.tables[table][id]
	var snapshot map[string]any
	if ok {
		snapshot = cloneRow(row)
	}
	s.mu.Unlock()

	if !ok {
		return infra.WrapRepoErr("document not found", nil, infra.KindNotFound)
	}
	return hydrate(snapshot, dest)
}

func (s *MemoryStore) Find(_ context.Context, table string, filter Filter, opts FindOptions, dest any) error {
	s.mu.Lock()
	matched := make([]map[string]any, 0)
	for _, row := range s.tables[table] {
		if rowMatches(row, filter) {
			matched = append(matched, cloneRow(row))
		}
	}
	s.mu.Unlock()

	if opts.OrderBy != "" {
		sortRows(matched, opts.OrderBy)
	}
	if opts.Limit > 0 && len(matched) > opts.Limit {
		matched = matched[:opts.Limit]
	}
	return hydrate(matched, dest)
}

func (s *MemoryStore) InsertUnique(_ context.Context, table string, row map[string]any, uniqueKey []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := s.uniqueKeys[table]
	if len(uniqueKey) > 0 {
		keys = append(keys, uniqueKey)
	}
	for _, key := range keys {
		for _, existing := range s.tables[table] {
			if fieldsEqual(existing, row, key) {
				return infra.WrapRepoErr("unique key violated", nil, infra.KindDuplicateKey)
			}
		}
	}

	id, ok := row["id"].(uuid.UUID)
	if !ok {
		return infra.WrapRepoErr("row missing uuid id", nil)
	}
	if s.tables[table] == nil {
		s.tables[table] = make(map[uuid.UUID]map[string]any)
	}
	if _, exists := s.tables[table][id]; exists {
		return infra.WrapRepoErr("unique key violated", nil, infra.KindDuplicateKey)
	}
	s.tables[table][id] = cloneRow(row)
	return nil
}

func (s *MemoryStore) CompareAndSet(_ context.Context, table string, id uuid.UUID, field string, expected, next any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.tables[table][id]
	if !ok {
		// A vanished document is a lost race, not a store failure.
		return false, nil
	}
	if !valuesEqual(row[field], expected) {
		return false, nil
	}
	row[field] = next
	row["updated_at"] = time.Now().UTC()
	return true, nil
}

func (s *MemoryStore) Increment(_ context.Context, table string, id uuid.UUID, field string, delta int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.tables[table][id]
	if !ok {
		return infra.WrapRepoErr("document not found for increment", nil, infra.KindNotFound)
	}
	current, ok := asInt64(row[field])
	if !ok {
		return infra.WrapRepoErr("field is not numeric", nil)
	}
	row[field] = current + delta
	row["updated_at"] = time.Now().UTC()
	return nil
}

func (s *MemoryStore) Update(_ context.Context, table string, id uuid.UUID, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.tables[table][id]
	if !ok {
		return infra.WrapRepoErr("document not found for update", nil, infra.KindNotFound)
	}
	for col, val := range fields {
		row[col] = val
	}
	row["updated_at"] = time.Now().UTC()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, table string, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tables[table][id]; !ok {
		return infra.WrapRepoErr("document not found for delete", nil, infra.KindNotFound)
	}
	delete(s.tables[table], id)
	return nil
}

func cloneRow(row map[string]any) map[string]any {
	clone := make(map[string]any, len(row))
	for k, v := range row {
		clone[k] = v
	}
	return clone
}

// hydrate converts stored rows into the caller's struct shape through a JSON
// round-trip, mirroring how a document store driver would decode documents.
func hydrate(src, dest any) error {
	data, err := json.Marshal(src)
	if err != nil {
		return infra.WrapRepoErr("failed to encode document", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return infra.WrapRepoErr("failed to decode document", err)
	}
	return nil
}

func rowMatches(row map[string]any, filter Filter) bool {
	for field, want := range filter {
		if !valuesEqual(row[field], want) {
			return false
		}
	}
	return true
}

func fieldsEqual(a, b map[string]any, fields []string) bool {
	for _, f := range fields {
		if !valuesEqual(a[f], b[f]) {
			return false
		}
	}
	return true
}

func valuesEqual(a, b any) bool {
	if ai, ok := asInt64(a); ok {
		bi, ok := asInt64(b)
		return ok && ai == bi
	}
	if at, ok := a.(time.Time); ok {
		bt, ok := b.(time.Time)
		return ok && at.Equal(bt)
	}
	return a == b
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}

func sortRows(rows []map[string]any, orderBy string) {
	parts := strings.Fields(orderBy)
	field := parts[0]
	desc := len(parts) > 1 && strings.EqualFold(parts[1], "DESC")

	sort.SliceStable(rows, func(i, j int) bool {
		less := valueLess(rows[i][field], rows[j][field])
		if desc {
			return !less && !valuesEqual(rows[i][field], rows[j][field])
		}
		return less
	})
}

func valueLess(a, b any) bool {
	if ai, ok := asInt64(a); ok {
		bi, _ := asInt64(b)
		return ai < bi
	}
	if at, ok := a.(time.Time); ok {
		bt, _ := b.(time.Time)
		return at.Before(bt)
	}
	as, _ := a.(string)
	bs, _ := b.(string)
	return as < bs
}
