package driverschedule

import (
	"context"
	"errors"
	"strings"
	"time"

	driverscheduleerrors "go-dinas/internal/driverschedule/errors"
	"go-dinas/internal/employee"
	"go-dinas/internal/events"
	"go-dinas/internal/shared/contextutil"
	"go-dinas/internal/store"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, req CreateDriverScheduleRequest) (DriverSchedule, error)
	GetAll(ctx context.Context, filter store.Filter) ([]DriverSchedule, error)
	GetByID(ctx context.Context, id int64) (DriverSchedule, error)
	Update(ctx context.Context, id int64, req UpdateDriverScheduleRequest) (DriverSchedule, error)
	Delete(ctx context.Context, id int64) error
	Start(ctx context.Context, id int64) (DriverSchedule, error)
	End(ctx context.Context, id int64) (DriverSchedule, error)
	Pass(ctx context.Context, id int64) (DigitalPass, error)
	Calendar(ctx context.Context, q CalendarQuery) ([]CalendarEvent, error)
}

type service struct {
	repo      Repository
	drivers   DriverLookup
	publisher EventPublisher
	now       func() time.Time
	logger    *zap.Logger
}

// NewService: publisher may be nil (events dropped), now may be nil (time.Now).
func NewService(
	repo Repository,
	drivers DriverLookup,
	publisher EventPublisher,
	now func() time.Time,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("driverschedule.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("driverschedule.service")
	}
	if publisher == nil {
		publisher = NewNopPublisher()
	}
	if now == nil {
		now = time.Now
	}
	return &service{
		repo:      repo,
		drivers:   drivers,
		publisher: publisher,
		now:       now,
		logger:    l,
	}
}

// eligibleDriver returns the driver's name when the employee may drive.
func (s *service) eligibleDriver(ctx context.Context, driverID int64) (string, error) {
	e, err := s.drivers.Get(ctx, driverID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", store.Validationf("driverId %d does not reference an existing employee", driverID)
		}
		return "", err
	}
	if !e.IsActive || !e.IsDriver {
		return "", driverscheduleerrors.ErrDriverNotEligible
	}
	return e.Name, nil
}

func toStop(r StopRequest) Stop {
	return Stop{
		Location: strings.TrimSpace(r.Location),
		Time:     r.Time,
		MapsLink: strings.TrimSpace(r.MapsLink),
	}
}

func (s *service) Create(ctx context.Context, req CreateDriverScheduleRequest) (DriverSchedule, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create driver schedule requested",
		zap.String("order_number", req.OrderNumber),
		zap.Int64("driver_id", req.DriverID),
	)

	name, err := s.eligibleDriver(ctx, req.DriverID)
	if err != nil {
		log.Warn("driver not eligible", zap.Int64("driver_id", req.DriverID), zap.Error(err))
		return DriverSchedule{}, err
	}

	d, err := s.repo.Create(ctx, DriverSchedule{
		DriverID:    req.DriverID,
		DriverName:  name,
		OrderNumber: strings.TrimSpace(req.OrderNumber),
		Pickup:      toStop(req.Pickup),
		Drop:        toStop(req.Drop),
		Status:      StatusPending,
	})
	if err != nil {
		log.Warn("create driver schedule failed", zap.String("order_number", req.OrderNumber), zap.Error(err))
		return DriverSchedule{}, err
	}

	log.Info("create driver schedule success", zap.Int64("schedule_id", d.ID))
	return d, nil
}

func (s *service) GetAll(ctx context.Context, filter store.Filter) ([]DriverSchedule, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) GetByID(ctx context.Context, id int64) (DriverSchedule, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) Update(ctx context.Context, id int64, req UpdateDriverScheduleRequest) (DriverSchedule, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	var driverName string
	if req.DriverID != nil {
		var err error
		if driverName, err = s.eligibleDriver(ctx, *req.DriverID); err != nil {
			return DriverSchedule{}, err
		}
	}

	d, err := s.repo.Update(ctx, id, func(d *DriverSchedule) error {
		if d.Status != StatusPending {
			return driverscheduleerrors.ErrNotEditable
		}
		if req.DriverID != nil {
			d.DriverID = *req.DriverID
			d.DriverName = driverName
		}
		if req.OrderNumber != nil {
			d.OrderNumber = strings.TrimSpace(*req.OrderNumber)
		}
		if req.Pickup != nil {
			d.Pickup = toStop(*req.Pickup)
		}
		if req.Drop != nil {
			d.Drop = toStop(*req.Drop)
		}
		return nil
	})
	if err != nil {
		log.Warn("update driver schedule failed", zap.Int64("schedule_id", id), zap.Error(err))
		return DriverSchedule{}, err
	}

	log.Info("update driver schedule success", zap.Int64("schedule_id", id))
	return d, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	log := contextutil.GetLogger(ctx, s.logger)
	if err := s.repo.Delete(ctx, id); err != nil {
		log.Warn("delete driver schedule failed", zap.Int64("schedule_id", id), zap.Error(err))
		return err
	}
	log.Info("delete driver schedule success", zap.Int64("schedule_id", id))
	return nil
}

func (s *service) Start(ctx context.Context, id int64) (DriverSchedule, error) {
	return s.transition(ctx, id, StatusDeparted)
}

func (s *service) End(ctx context.Context, id int64) (DriverSchedule, error) {
	return s.transition(ctx, id, StatusArrived)
}

func (s *service) transition(ctx context.Context, id int64, to string) (DriverSchedule, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	var from string
	now := s.now()
	d, err := s.repo.Update(ctx, id, func(d *DriverSchedule) error {
		from = d.Status
		return d.advance(to, now)
	})
	if err != nil {
		log.Warn("driver schedule transition rejected",
			zap.Int64("schedule_id", id),
			zap.String("to", to),
			zap.Error(err),
		)
		return DriverSchedule{}, err
	}

	event := events.TripStatusChanged{
		EventType:   events.TripStatusChangedEvent,
		ScheduleID:  d.ID,
		OrderNumber: d.OrderNumber,
		DriverID:    d.DriverID,
		DriverName:  d.DriverName,
		FromStatus:  from,
		ToStatus:    to,
		ChangedBy:   contextutil.GetAccountID(ctx),
		RequestID:   contextutil.GetRequestID(ctx),
		OccurredAt:  now.UTC(),
	}
	// Transisi sudah tersimpan; kegagalan publish hanya dicatat.
	if err := s.publisher.PublishTripStatusChanged(ctx, event); err != nil {
		log.Error("publish trip status changed failed",
			zap.Int64("schedule_id", d.ID),
			zap.String("to", to),
			zap.Error(err),
		)
	}

	log.Info("driver schedule transitioned",
		zap.Int64("schedule_id", d.ID),
		zap.String("from", from),
		zap.String("to", to),
	)
	return d, nil
}

func (s *service) Pass(ctx context.Context, id int64) (DigitalPass, error) {
	d, err := s.repo.Get(ctx, id)
	if err != nil {
		return DigitalPass{}, err
	}
	if d.Status == StatusArrived {
		return DigitalPass{}, driverscheduleerrors.ErrPassUnavailable
	}
	return DigitalPass{
		PassID:      PassID(d.OrderNumber, d.Pickup.Time),
		OrderNumber: d.OrderNumber,
		DriverName:  d.DriverName,
		Pickup:      d.Pickup,
		Drop:        d.Drop,
		Status:      d.Status,
	}, nil
}

// Calendar returns schedules overlapping [start, end]; an open bound is unbounded.
func (s *service) Calendar(ctx context.Context, q CalendarQuery) ([]CalendarEvent, error) {
	if q.Start != nil && q.End != nil && q.Start.After(*q.End) {
		return nil, driverscheduleerrors.ErrInvalidWindow
	}

	all, err := s.repo.List(ctx, store.Filter{})
	if err != nil {
		return nil, err
	}
	out := make([]CalendarEvent, 0, len(all))
	for _, d := range all {
		if q.End != nil && d.Pickup.Time.After(*q.End) {
			continue
		}
		if q.Start != nil && d.Drop.Time.Before(*q.Start) {
			continue
		}
		out = append(out, CalendarEvent{
			ID:     d.ID,
			Title:  d.OrderNumber + " - " + d.DriverName,
			Start:  d.Pickup.Time,
			End:    d.Drop.Time,
			Status: d.Status,
		})
	}
	return out, nil
}

var _ DriverLookup = (employee.Repository)(nil)
