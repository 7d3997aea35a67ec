package roomtype

import (
	"slices"
	"strings"
	"time"

	roomtypeerrors "go-dinas/internal/roomtype/errors"
	"go-dinas/internal/store"

	"github.com/shopspring/decimal"
)

const (
	CollectionName  = "room_type"
	hotelCollection = "hotel"
)

type RoomType struct {
	ID        int64           `json:"id"`
	Code      string          `json:"code"`
	TypeName  string          `json:"typeName"`
	HotelIDs  []int64         `json:"hotelIds"`
	Price     decimal.Decimal `json:"price"`
	Capacity  int             `json:"capacity"`
	IsActive  bool            `json:"isActive"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func validateRoomType(rt *RoomType) error {
	switch {
	case rt.Code == "":
		return store.Validationf("code is required")
	case strings.TrimSpace(rt.TypeName) == "":
		return store.Validationf("typeName is required")
	case len(rt.HotelIDs) == 0:
		return roomtypeerrors.ErrHotelRequired
	case rt.Price.IsNegative():
		return roomtypeerrors.ErrNegativePrice
	case rt.Capacity <= 0:
		return roomtypeerrors.ErrInvalidCapacity
	}
	return nil
}

var schema = store.Schema[RoomType]{
	Name: CollectionName,
	ID:   func(rt *RoomType) *int64 { return &rt.ID },
	Uniques: []store.Unique[RoomType]{
		{Field: "code", Value: func(rt *RoomType) string { return rt.Code }},
	},
	Active: func(rt *RoomType) bool { return rt.IsActive },
	Search: func(rt *RoomType) []string { return []string{rt.Code, rt.TypeName} },
	// Satu ref per hotel; filter hotelId cocok bila salah satunya sama.
	Refs: func(rt *RoomType) []store.Ref {
		refs := make([]store.Ref, 0, len(rt.HotelIDs))
		for _, id := range rt.HotelIDs {
			refs = append(refs, store.Ref{Field: "hotelId", Collection: hotelCollection, ID: id})
		}
		return refs
	},
	Validate: validateRoomType,
	Clone: func(rt RoomType) RoomType {
		rt.HotelIDs = slices.Clone(rt.HotelIDs)
		return rt
	},
	Touch: func(rt *RoomType, now time.Time, created bool) {
		if created {
			rt.CreatedAt = now
		}
		rt.UpdatedAt = now
	},
}

// dedupeHotels keeps first occurrence order.
func dedupeHotels(ids []int64) []int64 {
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}
