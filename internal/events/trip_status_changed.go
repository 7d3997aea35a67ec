package events

import "time"

const (
	TripLifecycleTopic     = "trip.driver_schedule.lifecycle.v1"
	TripStatusChangedEvent = "trip_status_changed"
)

// TripStatusChanged is emitted on every driver schedule transition.
type TripStatusChanged struct {
	EventType   string    `json:"event_type"`
	ScheduleID  int64     `json:"schedule_id"`
	OrderNumber string    `json:"order_number"`
	DriverID    int64     `json:"driver_id"`
	DriverName  string    `json:"driver_name"`
	FromStatus  string    `json:"from_status"`
	ToStatus    string    `json:"to_status"`
	ChangedBy   int64     `json:"changed_by"`
	RequestID   string    `json:"request_id,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}
