package employee

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"go-dinas/internal/shared/contextutil"
	"go-dinas/internal/shared/ptr"
	"go-dinas/internal/store"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	DriverOptionsKey      = "employees:driver-options"
	driverOptionsCacheTTL = time.Hour
)

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error)
	GetAll(ctx context.Context, filter store.Filter) ([]Employee, error)
	GetDriverOptions(ctx context.Context) ([]DriverOption, error)
	GetByID(ctx context.Context, id int64) (Employee, error)
	Update(ctx context.Context, id int64, req UpdateEmployeeRequest) (Employee, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
	// cacheMu menjaga generation bersama Set/Del driver options: hasil build yang
	// dimulai sebelum invalidasi tidak boleh masuk cache.
	cacheMu    sync.Mutex
	generation uint64
}

// NewService: rdb may be nil, driver options are then built on every call.
func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func normalizeWhatsapp(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create employee requested",
		zap.String("email", req.Email),
		zap.Int64("branch_id", req.BranchID),
		zap.Bool("is_driver", req.IsDriver),
	)

	e, err := s.repo.Create(ctx, Employee{
		Name:           strings.TrimSpace(req.Name),
		Email:          strings.TrimSpace(req.Email),
		Gender:         req.Gender,
		BranchID:       req.BranchID,
		RoleID:         req.RoleID,
		LoginAccess:    req.LoginAccess,
		IsDriver:       req.IsDriver,
		WhatsappNumber: normalizeWhatsapp(req.WhatsappNumber),
		IsActive:       ptr.ValueOr(req.IsActive, true),
	})
	if err != nil {
		log.Warn("create employee failed", zap.String("email", req.Email), zap.Error(err))
		return Employee{}, err
	}

	s.invalidateDriverOptions(ctx)
	log.Info("create employee success", zap.Int64("employee_id", e.ID))
	return e, nil
}

func (s *service) GetAll(ctx context.Context, filter store.Filter) ([]Employee, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) GetByID(ctx context.Context, id int64) (Employee, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) GetDriverOptions(ctx context.Context) ([]DriverOption, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, DriverOptionsKey).Result(); err == nil {
			var resp []DriverOption
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Singleflight supaya banyak form yang terbuka bersamaan hanya membangun list sekali.
	v, err, _ := s.sf.Do(DriverOptionsKey, func() (interface{}, error) {
		ctx := context.WithoutCancel(ctx)
		s.cacheMu.Lock()
		gen := s.generation
		s.cacheMu.Unlock()

		active := true
		drivers, err := s.repo.List(ctx, store.Filter{IsActive: &active}.WithAttr("isDriver", "true"))
		if err != nil {
			return nil, err
		}

		resp := make([]DriverOption, 0, len(drivers))
		for _, d := range drivers {
			resp = append(resp, DriverOption{
				ID:             d.ID,
				Name:           d.Name,
				BranchID:       d.BranchID,
				WhatsappNumber: ptr.ValueOr(d.WhatsappNumber, ""),
			})
		}

		s.storeDriverOptions(ctx, gen, resp)
		return resp, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]DriverOption), nil
}

func (s *service) Update(ctx context.Context, id int64, req UpdateEmployeeRequest) (Employee, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("update employee requested", zap.Int64("employee_id", id))

	e, err := s.repo.Update(ctx, id, func(e *Employee) error {
		if req.Name != nil {
			e.Name = strings.TrimSpace(*req.Name)
		}
		if req.Email != nil {
			e.Email = strings.TrimSpace(*req.Email)
		}
		if req.Gender != nil {
			e.Gender = *req.Gender
		}
		if req.BranchID != nil {
			e.BranchID = *req.BranchID
		}
		if req.RoleID != nil {
			e.RoleID = *req.RoleID
		}
		if req.LoginAccess != nil {
			e.LoginAccess = *req.LoginAccess
		}
		if req.IsDriver != nil {
			e.IsDriver = *req.IsDriver
		}
		if req.WhatsappNumber != nil {
			e.WhatsappNumber = normalizeWhatsapp(req.WhatsappNumber)
		}
		if req.IsActive != nil {
			e.IsActive = *req.IsActive
		}
		return nil
	})
	if err != nil {
		log.Warn("update employee failed", zap.Int64("employee_id", id), zap.Error(err))
		return Employee{}, err
	}

	s.invalidateDriverOptions(ctx)
	log.Info("update employee success", zap.Int64("employee_id", id))
	return e, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	log := contextutil.GetLogger(ctx, s.logger)
	if err := s.repo.Delete(ctx, id); err != nil {
		log.Warn("delete employee failed", zap.Int64("employee_id", id), zap.Error(err))
		return err
	}
	s.invalidateDriverOptions(ctx)
	log.Info("delete employee success", zap.Int64("employee_id", id))
	return nil
}

func (s *service) storeDriverOptions(ctx context.Context, gen uint64, resp []DriverOption) {
	if s.rdb == nil {
		return
	}
	payload, err := json.Marshal(resp)
	if err != nil {
		return
	}

	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	if s.generation != gen {
		s.logger.Debug("driver options changed during build, skip cache")
		return
	}
	if err := s.rdb.Set(ctx, DriverOptionsKey, payload, driverOptionsCacheTTL).Err(); err != nil {
		s.logger.Warn("cache driver options failed", zap.Error(err))
	}
}

func (s *service) invalidateDriverOptions(ctx context.Context) {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	s.generation++
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, DriverOptionsKey).Err(); err != nil {
		s.logger.Error("failed to invalidate driver options cache",
			zap.Error(err),
			zap.String("key", DriverOptionsKey),
		)
	}
}
