package roomtype

import "go-dinas/internal/store"

type Repository = store.Repository[RoomType]

func NewRepository(db *store.DB) *store.Collection[RoomType] {
	return store.NewCollection(db, schema)
}
