// Package store is the in-memory data layer. Every entity type lives in a
// Collection owned by a DB; the DB is the single serialization point so that
// uniqueness and referential checks across collections see one consistent view.
package store

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

type table interface {
	hasID(id int64) bool
	countRefs(collection string, id int64) int
	dump() ([]byte, error)
	prepareLoad(data []byte) (func(), error)
	reset()
}

type DB struct {
	mu     sync.RWMutex
	tables map[string]table
	order  []string
	now    func() time.Time
}

type Option func(*DB)

// WithClock overrides the clock used for record timestamps.
func WithClock(now func() time.Time) Option {
	return func(db *DB) {
		db.now = now
	}
}

func New(opts ...Option) *DB {
	db := &DB{
		tables: map[string]table{},
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(db)
	}
	return db
}

func (db *DB) register(name string, t table) {
	db.mu.Lock()
	defer db.mu.Unlock()
	if _, dup := db.tables[name]; dup {
		panic(fmt.Sprintf("store: collection %q registered twice", name))
	}
	db.tables[name] = t
	db.order = append(db.order, name)
}

func (db *DB) Now() time.Time {
	return db.now()
}

// Collections returns collection names in registration order.
func (db *DB) Collections() []string {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return append([]string(nil), db.order...)
}

// Reset empties every collection and restarts identifiers. Test hook.
func (db *DB) Reset() {
	db.mu.Lock()
	defer db.mu.Unlock()
	for _, name := range db.order {
		db.tables[name].reset()
	}
}

// Snapshot serialises every collection (rows plus the next identifier).
func (db *DB) Snapshot() (map[string]json.RawMessage, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	out := make(map[string]json.RawMessage, len(db.order))
	for _, name := range db.order {
		b, err := db.tables[name].dump()
		if err != nil {
			return nil, fmt.Errorf("snapshot %s: %w", name, err)
		}
		out[name] = b
	}
	return out, nil
}

// Restore replaces the collections present in data. Unknown names are ignored.
// Nothing is applied unless every payload decodes.
func (db *DB) Restore(data map[string]json.RawMessage) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	applies := make([]func(), 0, len(data))
	for _, name := range db.order {
		raw, ok := data[name]
		if !ok {
			continue
		}
		apply, err := db.tables[name].prepareLoad(raw)
		if err != nil {
			return fmt.Errorf("restore %s: %w", name, err)
		}
		applies = append(applies, apply)
	}
	for _, apply := range applies {
		apply()
	}
	return nil
}

// hasRecord is called with db.mu held.
func (db *DB) hasRecord(collection string, id int64) bool {
	t, ok := db.tables[collection]
	return ok && t.hasID(id)
}
