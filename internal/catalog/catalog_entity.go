package catalog

import (
	"time"

	"go-dinas/internal/domain"
	"go-dinas/internal/store"
)

// Item is the shape shared by the simple code/name master tables.
type Item struct {
	ID        int64     `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Kind binds one master table to its collection, RBAC resource and URL segment.
type Kind struct {
	Collection string
	Resource   string
	Path       string
	Label      string
}

var (
	Hotel       = Kind{Collection: "hotel", Resource: domain.ResourceHotel, Path: "/hotels", Label: "hotel"}
	Ticket      = Kind{Collection: "ticket", Resource: domain.ResourceTicket, Path: "/tickets", Label: "ticket"}
	VehicleType = Kind{Collection: "vehicle_type", Resource: domain.ResourceVehicleType, Path: "/vehicle-types", Label: "vehicle type"}
	City        = Kind{Collection: "city", Resource: domain.ResourceCity, Path: "/cities", Label: "city"}
	Supplier    = Kind{Collection: "supplier", Resource: domain.ResourceSupplier, Path: "/suppliers", Label: "supplier"}
)

// Kinds lists every catalog table in registration order.
func Kinds() []Kind {
	return []Kind{Hotel, Ticket, VehicleType, City, Supplier}
}

func schemaFor(kind Kind) store.Schema[Item] {
	return store.Schema[Item]{
		Name: kind.Collection,
		ID:   func(i *Item) *int64 { return &i.ID },
		Uniques: []store.Unique[Item]{
			{Field: "code", Value: func(i *Item) string { return i.Code }},
		},
		Active: func(i *Item) bool { return i.IsActive },
		Search: func(i *Item) []string { return []string{i.Code, i.Name} },
		Validate: func(i *Item) error {
			switch {
			case i.Code == "":
				return store.Validationf("code is required")
			case i.Name == "":
				return store.Validationf("name is required")
			}
			return nil
		},
		Touch: func(i *Item, now time.Time, created bool) {
			if created {
				i.CreatedAt = now
			}
			i.UpdatedAt = now
		},
	}
}
