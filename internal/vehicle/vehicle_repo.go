package vehicle

import "go-dinas/internal/store"

type Repository = store.Repository[Vehicle]

func NewRepository(db *store.DB) *store.Collection[Vehicle] {
	return store.NewCollection(db, schema)
}
