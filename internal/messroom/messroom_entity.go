package messroom

import (
	"strconv"
	"strings"
	"time"

	messroomerrors "go-dinas/internal/messroom/errors"
	"go-dinas/internal/store"
)

const CollectionName = "mess_room"

type MessRoom struct {
	ID         int64     `json:"id"`
	BranchID   int64     `json:"branchId"`
	RoomNumber string    `json:"roomNumber"`
	Gender     string    `json:"gender"`
	Capacity   int       `json:"capacity"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

var schema = store.Schema[MessRoom]{
	Name: CollectionName,
	ID:   func(m *MessRoom) *int64 { return &m.ID },
	// Nomor kamar unik per cabang.
	Uniques: []store.Unique[MessRoom]{
		{Field: "branchId/roomNumber", Value: func(m *MessRoom) string {
			return strconv.FormatInt(m.BranchID, 10) + "/" + m.RoomNumber
		}},
	},
	Active: func(m *MessRoom) bool { return m.IsActive },
	Search: func(m *MessRoom) []string { return []string{m.RoomNumber} },
	Refs: func(m *MessRoom) []store.Ref {
		return []store.Ref{{Field: "branchId", Collection: "branch", ID: m.BranchID}}
	},
	Attrs: func(m *MessRoom) map[string]string {
		return map[string]string{"gender": m.Gender}
	},
	Validate: func(m *MessRoom) error {
		switch {
		case strings.TrimSpace(m.RoomNumber) == "":
			return messroomerrors.ErrRoomNumberRequired
		case m.Gender != "male" && m.Gender != "female":
			return messroomerrors.ErrInvalidGender
		case m.Capacity <= 0:
			return messroomerrors.ErrInvalidCapacity
		}
		return nil
	},
	Touch: func(m *MessRoom, now time.Time, created bool) {
		if created {
			m.CreatedAt = now
		}
		m.UpdatedAt = now
	},
}
