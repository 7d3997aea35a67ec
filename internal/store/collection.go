package store

import (
	"context"
	"encoding/json"
	"slices"
	"strings"
	"time"
)

// Ref is an outgoing reference from a record to a record of another collection.
type Ref struct {
	Field      string
	Collection string
	ID         int64
}

// Unique declares a field compared case-insensitively (after trimming) across the collection.
type Unique[T any] struct {
	Field string
	Value func(*T) string
}

// Schema describes how the generic collection reads and validates T.
// Only Name and ID are mandatory.
type Schema[T any] struct {
	Name     string
	ID       func(*T) *int64
	Uniques  []Unique[T]
	Active   func(*T) bool
	Search   func(*T) []string
	Refs     func(*T) []Ref
	Attrs    func(*T) map[string]string
	Validate func(*T) error
	// Clone must deep-copy slices and maps held by T.
	Clone func(T) T
	Touch func(rec *T, now time.Time, created bool)
}

type Repository[T any] interface {
	List(ctx context.Context, f Filter) ([]T, error)
	Get(ctx context.Context, id int64) (T, error)
	Create(ctx context.Context, rec T) (T, error)
	// Update applies patch to a copy of the stored record. patch must not call back
	// into the store; returning an error aborts the update.
	Update(ctx context.Context, id int64, patch func(*T) error) (T, error)
	Delete(ctx context.Context, id int64) error
}

type Collection[T any] struct {
	db     *DB
	schema Schema[T]
	rows   []T
	nextID int64
	// onUpdate runs with db.mu held, after the updated record passed its checks.
	// The returned commit is applied only if every hook succeeds.
	onUpdate []func(before, after *T) (commit func(), err error)
}

var _ Repository[struct{ ID int64 }] = (*Collection[struct{ ID int64 }])(nil)

func NewCollection[T any](db *DB, schema Schema[T]) *Collection[T] {
	if schema.Name == "" || schema.ID == nil {
		panic("store: schema needs Name and ID")
	}
	if schema.Clone == nil {
		schema.Clone = func(v T) T { return v }
	}
	c := &Collection[T]{db: db, schema: schema}
	db.register(schema.Name, c)
	return c
}

func (c *Collection[T]) Name() string {
	return c.schema.Name
}

func (c *Collection[T]) List(ctx context.Context, f Filter) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.db.mu.RLock()
	defer c.db.mu.RUnlock()

	out := make([]T, 0, len(c.rows))
	for i := range c.rows {
		if matches(&c.schema, &c.rows[i], f) {
			out = append(out, c.schema.Clone(c.rows[i]))
		}
	}
	return out, nil
}

func (c *Collection[T]) Get(ctx context.Context, id int64) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	c.db.mu.RLock()
	defer c.db.mu.RUnlock()

	idx := c.indexOf(id)
	if idx < 0 {
		return zero, notFound(c.schema.Name, id)
	}
	return c.schema.Clone(c.rows[idx]), nil
}

func (c *Collection[T]) Create(ctx context.Context, rec T) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	c.db.mu.Lock()
	defer c.db.mu.Unlock()

	rec = c.schema.Clone(rec)
	*c.schema.ID(&rec) = 0
	if err := c.check(&rec, 0, nil); err != nil {
		return zero, err
	}

	c.nextID++
	*c.schema.ID(&rec) = c.nextID
	if c.schema.Touch != nil {
		c.schema.Touch(&rec, c.db.now(), true)
	}
	c.rows = append(c.rows, rec)
	return c.schema.Clone(rec), nil
}

func (c *Collection[T]) Update(ctx context.Context, id int64, patch func(*T) error) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	c.db.mu.Lock()
	defer c.db.mu.Unlock()

	idx := c.indexOf(id)
	if idx < 0 {
		return zero, notFound(c.schema.Name, id)
	}

	before := c.rows[idx]
	next := c.schema.Clone(before)
	if patch != nil {
		if err := patch(&next); err != nil {
			return zero, err
		}
	}
	*c.schema.ID(&next) = id
	if err := c.check(&next, id, &before); err != nil {
		return zero, err
	}
	commits := make([]func(), 0, len(c.onUpdate))
	for _, hook := range c.onUpdate {
		commit, err := hook(&before, &next)
		if err != nil {
			return zero, err
		}
		commits = append(commits, commit)
	}

	if c.schema.Touch != nil {
		c.schema.Touch(&next, c.db.now(), false)
	}
	c.rows[idx] = next
	for _, commit := range commits {
		commit()
	}
	return c.schema.Clone(next), nil
}

func (c *Collection[T]) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.db.mu.Lock()
	defer c.db.mu.Unlock()

	idx := c.indexOf(id)
	if idx < 0 {
		return notFound(c.schema.Name, id)
	}
	for _, name := range c.db.order {
		if n := c.db.tables[name].countRefs(c.schema.Name, id); n > 0 {
			return Conflictf("%s %d is still referenced by %d %s record(s)", c.schema.Name, id, n, name)
		}
	}

	c.rows = slices.Delete(c.rows, idx, idx+1)
	return nil
}

// Propagate keeps copies of src data held by dst rows in step with src. On every
// update of a src record, sync is called on a copy of each dst row; rows for which
// it reports a change are re-checked and written in the same critical section as
// the src update. A failing dst check aborts the src update.
func Propagate[S, D any](src *Collection[S], dst *Collection[D], sync func(before, after *S, row *D) bool) {
	if src.db != dst.db {
		panic("store: propagate across databases")
	}
	src.db.mu.Lock()
	defer src.db.mu.Unlock()

	src.onUpdate = append(src.onUpdate, func(before, after *S) (func(), error) {
		var (
			idxs []int
			rows []D
		)
		for i := range dst.rows {
			next := dst.schema.Clone(dst.rows[i])
			if !sync(before, after, &next) {
				continue
			}
			if err := dst.check(&next, *dst.schema.ID(&dst.rows[i]), &dst.rows[i]); err != nil {
				return nil, err
			}
			idxs = append(idxs, i)
			rows = append(rows, next)
		}
		return func() {
			for k, i := range idxs {
				dst.rows[i] = rows[k]
			}
		}, nil
	})
}

// check runs with db.mu held. selfID is 0 on create; before is nil on create.
func (c *Collection[T]) check(rec *T, selfID int64, before *T) error {
	if c.schema.Validate != nil {
		if err := c.schema.Validate(rec); err != nil {
			return asValidation(err)
		}
	}

	for _, u := range c.schema.Uniques {
		raw := strings.TrimSpace(u.Value(rec))
		if raw == "" {
			continue
		}
		for i := range c.rows {
			if *c.schema.ID(&c.rows[i]) == selfID {
				continue
			}
			if strings.EqualFold(strings.TrimSpace(u.Value(&c.rows[i])), raw) {
				return Conflictf("%s %s %q already exists", c.schema.Name, u.Field, raw)
			}
		}
	}

	if c.schema.Refs == nil {
		return nil
	}
	var old []Ref
	if before != nil {
		old = c.schema.Refs(before)
	}
	for _, r := range c.schema.Refs(rec) {
		if slices.Contains(old, r) {
			continue
		}
		if !c.db.hasRecord(r.Collection, r.ID) {
			return Validationf("%s %d does not reference an existing %s", r.Field, r.ID, r.Collection)
		}
	}
	return nil
}

func (c *Collection[T]) indexOf(id int64) int {
	for i := range c.rows {
		if *c.schema.ID(&c.rows[i]) == id {
			return i
		}
	}
	return -1
}

func (c *Collection[T]) hasID(id int64) bool {
	return c.indexOf(id) >= 0
}

func (c *Collection[T]) countRefs(collection string, id int64) int {
	if c.schema.Refs == nil {
		return 0
	}
	n := 0
	for i := range c.rows {
		for _, r := range c.schema.Refs(&c.rows[i]) {
			if r.Collection == collection && r.ID == id {
				n++
				break
			}
		}
	}
	return n
}

type tableDump[T any] struct {
	NextID int64 `json:"next_id"`
	Rows   []T   `json:"rows"`
}

func (c *Collection[T]) dump() ([]byte, error) {
	rows := make([]T, len(c.rows))
	for i := range c.rows {
		rows[i] = c.schema.Clone(c.rows[i])
	}
	return json.Marshal(tableDump[T]{NextID: c.nextID, Rows: rows})
}

func (c *Collection[T]) prepareLoad(data []byte) (func(), error) {
	var d tableDump[T]
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	next := d.NextID
	for i := range d.Rows {
		if id := *c.schema.ID(&d.Rows[i]); id > next {
			next = id
		}
	}
	return func() {
		c.rows = d.Rows
		c.nextID = next
	}, nil
}

func (c *Collection[T]) reset() {
	c.rows = nil
	c.nextID = 0
}
