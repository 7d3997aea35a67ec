package driverschedule

import "time"

type StopRequest struct {
	Location string    `json:"location" binding:"required,max=255"`
	Time     time.Time `json:"time"`
	MapsLink string    `json:"mapsLink" binding:"omitempty,url"`
}

type CreateDriverScheduleRequest struct {
	DriverID    int64       `json:"driverId" binding:"required,gt=0"`
	OrderNumber string      `json:"orderNumber" binding:"required,max=30"`
	Pickup      StopRequest `json:"pickup"`
	Drop        StopRequest `json:"drop"`
}

// UpdateDriverScheduleRequest only applies while the schedule is Pending.
type UpdateDriverScheduleRequest struct {
	DriverID    *int64       `json:"driverId" binding:"omitempty,gt=0"`
	OrderNumber *string      `json:"orderNumber" binding:"omitempty,min=1,max=30"`
	Pickup      *StopRequest `json:"pickup"`
	Drop        *StopRequest `json:"drop"`
}

type DigitalPass struct {
	PassID      string `json:"passId"`
	OrderNumber string `json:"orderNumber"`
	DriverName  string `json:"driverName"`
	Pickup      Stop   `json:"pickup"`
	Drop        Stop   `json:"drop"`
	Status      string `json:"status"`
}

type CalendarEvent struct {
	ID     int64     `json:"id"`
	Title  string    `json:"title"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Status string    `json:"status"`
}

// CalendarQuery bounds are inclusive; nil means unbounded.
type CalendarQuery struct {
	Start *time.Time
	End   *time.Time
}
