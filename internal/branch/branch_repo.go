package branch

import "go-dinas/internal/store"

type Repository = store.Repository[Branch]

// NewRepository registers the branch collection on db.
func NewRepository(db *store.DB) *store.Collection[Branch] {
	return store.NewCollection(db, schema)
}
