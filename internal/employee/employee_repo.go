package employee

import "go-dinas/internal/store"

type Repository = store.Repository[Employee]

func NewRepository(db *store.DB) *store.Collection[Employee] {
	return store.NewCollection(db, schema)
}
