package vehicle

import (
	"time"

	"go-dinas/internal/store"
	vehicleerrors "go-dinas/internal/vehicle/errors"
)

const CollectionName = "vehicle"

type Vehicle struct {
	ID            int64     `json:"id"`
	BranchID      int64     `json:"branchId"`
	VehicleTypeID int64     `json:"vehicleTypeId"`
	PlateNumber   string    `json:"plateNumber"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

var schema = store.Schema[Vehicle]{
	Name: CollectionName,
	ID:   func(v *Vehicle) *int64 { return &v.ID },
	Uniques: []store.Unique[Vehicle]{
		{Field: "plateNumber", Value: func(v *Vehicle) string { return v.PlateNumber }},
	},
	Active: func(v *Vehicle) bool { return v.IsActive },
	Search: func(v *Vehicle) []string { return []string{v.PlateNumber} },
	Refs: func(v *Vehicle) []store.Ref {
		return []store.Ref{
			{Field: "branchId", Collection: "branch", ID: v.BranchID},
			{Field: "vehicleTypeId", Collection: "vehicle_type", ID: v.VehicleTypeID},
		}
	},
	Validate: func(v *Vehicle) error {
		if v.PlateNumber == "" {
			return vehicleerrors.ErrInvalidPlateNumber
		}
		return nil
	},
	Touch: func(v *Vehicle, now time.Time, created bool) {
		if created {
			v.CreatedAt = now
		}
		v.UpdatedAt = now
	},
}
