package plafond

import "go-dinas/internal/store"

type Repository = store.Repository[Plafond]

func NewRepository(db *store.DB) *store.Collection[Plafond] {
	return store.NewCollection(db, schema)
}
