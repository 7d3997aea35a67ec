package driverschedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	driverscheduleerrors "go-dinas/internal/driverschedule/errors"
	"go-dinas/internal/store"
)

const CollectionName = "driver_schedule"

const (
	StatusPending  = "Pending"
	StatusDeparted = "Departed"
	StatusArrived  = "Arrived"
)

// Stop is one end of a trip.
type Stop struct {
	Location string    `json:"location"`
	Time     time.Time `json:"time"`
	MapsLink string    `json:"mapsLink,omitempty"`
}

type DriverSchedule struct {
	ID            int64      `json:"id"`
	DriverID      int64      `json:"driverId"`
	DriverName    string     `json:"driverName"`
	OrderNumber   string     `json:"orderNumber"`
	Pickup        Stop       `json:"pickup"`
	Drop          Stop       `json:"drop"`
	Status        string     `json:"status"`
	DepartureTime *time.Time `json:"departureTime"`
	ArrivalTime   *time.Time `json:"arrivalTime"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// transitions lists the only legal status moves.
var transitions = map[string]string{
	StatusPending:  StatusDeparted,
	StatusDeparted: StatusArrived,
}

// advance moves the schedule to `to` and stamps the matching timestamp once.
func (d *DriverSchedule) advance(to string, now time.Time) error {
	if transitions[d.Status] != to {
		return driverscheduleerrors.ErrInvalidStatusTransition.WithDetails(map[string]string{
			"from": d.Status,
			"to":   to,
		})
	}
	d.Status = to
	switch to {
	case StatusDeparted:
		d.DepartureTime = &now
	case StatusArrived:
		d.ArrivalTime = &now
	}
	return nil
}

// PassID is derived from the order number and pickup instant so reprints stay stable.
func PassID(orderNumber string, pickup time.Time) string {
	return fmt.Sprintf("PASS-%s-%d", orderNumber, pickup.UnixMilli())
}

func validateSchedule(d *DriverSchedule) error {
	switch {
	case d.OrderNumber == "":
		return driverscheduleerrors.ErrOrderNumberMissing
	case strings.TrimSpace(d.Pickup.Location) == "" || strings.TrimSpace(d.Drop.Location) == "":
		return driverscheduleerrors.ErrLocationMissing
	case d.Pickup.Time.IsZero() || d.Drop.Time.IsZero():
		return store.Validationf("pickup and drop times are required")
	case d.Drop.Time.Before(d.Pickup.Time):
		return driverscheduleerrors.ErrDropBeforePickup
	}
	return nil
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

var schema = store.Schema[DriverSchedule]{
	Name: CollectionName,
	ID:   func(d *DriverSchedule) *int64 { return &d.ID },
	Uniques: []store.Unique[DriverSchedule]{
		{Field: "orderNumber", Value: func(d *DriverSchedule) string { return d.OrderNumber }},
	},
	Search: func(d *DriverSchedule) []string {
		return []string{d.OrderNumber, d.DriverName, d.Pickup.Location, d.Drop.Location}
	},
	Refs: func(d *DriverSchedule) []store.Ref {
		return []store.Ref{{Field: "driverId", Collection: "employee", ID: d.DriverID}}
	},
	Attrs: func(d *DriverSchedule) map[string]string {
		return map[string]string{
			"status":   d.Status,
			"driverId": strconv.FormatInt(d.DriverID, 10),
		}
	},
	Validate: validateSchedule,
	Clone: func(d DriverSchedule) DriverSchedule {
		d.DepartureTime = cloneTime(d.DepartureTime)
		d.ArrivalTime = cloneTime(d.ArrivalTime)
		return d
	},
	Touch: func(d *DriverSchedule, now time.Time, created bool) {
		if created {
			d.CreatedAt = now
		}
		d.UpdatedAt = now
	},
}
