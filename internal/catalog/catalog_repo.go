package catalog

import "go-dinas/internal/store"

type Repository = store.Repository[Item]

func NewRepository(db *store.DB, kind Kind) *store.Collection[Item] {
	return store.NewCollection(db, schemaFor(kind))
}
