package driverschedule

import (
	"context"

	"go-dinas/internal/employee"
	"go-dinas/internal/events"
	"go-dinas/internal/store"
)

type Repository = store.Repository[DriverSchedule]

func NewRepository(db *store.DB) *store.Collection[DriverSchedule] {
	return store.NewCollection(db, schema)
}

// SyncDriverNames rewrites the denormalized driverName on every schedule of a
// renamed employee, inside the employee update.
func SyncDriverNames(employees *store.Collection[employee.Employee], schedules *store.Collection[DriverSchedule]) {
	store.Propagate(employees, schedules, func(before, after *employee.Employee, d *DriverSchedule) bool {
		if d.DriverID != after.ID || before.Name == after.Name {
			return false
		}
		d.DriverName = after.Name
		return true
	})
}

//go:generate mockgen -source=driverschedule_repo.go -destination=mock/driverschedule_repo_mock.go -package=mock

// DriverLookup is the read side of the employee collection the schedule needs.
type DriverLookup interface {
	Get(ctx context.Context, id int64) (employee.Employee, error)
}

type EventPublisher interface {
	PublishTripStatusChanged(ctx context.Context, event events.TripStatusChanged) error
}

type nopPublisher struct{}

// NewNopPublisher is used when no outbox database is configured.
func NewNopPublisher() EventPublisher {
	return nopPublisher{}
}

func (nopPublisher) PublishTripStatusChanged(context.Context, events.TripStatusChanged) error {
	return nil
}
