package messroom

import "go-dinas/internal/store"

type Repository = store.Repository[MessRoom]

func NewRepository(db *store.DB) *store.Collection[MessRoom] {
	return store.NewCollection(db, schema)
}
