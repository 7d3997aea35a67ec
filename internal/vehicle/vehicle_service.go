package vehicle

import (
	"context"
	"strings"

	"go-dinas/internal/shared/contextutil"
	"go-dinas/internal/shared/ptr"
	"go-dinas/internal/store"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, req CreateVehicleRequest) (Vehicle, error)
	GetAll(ctx context.Context, filter store.Filter) ([]Vehicle, error)
	GetByID(ctx context.Context, id int64) (Vehicle, error)
	Update(ctx context.Context, id int64, req UpdateVehicleRequest) (Vehicle, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("vehicle.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("vehicle.service")
	}
	return &service{repo: repo, logger: l}
}

// normalizePlate: "b 1234  xyz" -> "B 1234 XYZ".
func normalizePlate(plate string) string {
	return strings.ToUpper(strings.Join(strings.Fields(plate), " "))
}

func (s *service) Create(ctx context.Context, req CreateVehicleRequest) (Vehicle, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	v, err := s.repo.Create(ctx, Vehicle{
		BranchID:      req.BranchID,
		VehicleTypeID: req.VehicleTypeID,
		PlateNumber:   normalizePlate(req.PlateNumber),
		IsActive:      ptr.ValueOr(req.IsActive, true),
	})
	if err != nil {
		log.Warn("create vehicle failed", zap.String("plate_number", req.PlateNumber), zap.Error(err))
		return Vehicle{}, err
	}

	log.Info("create vehicle success", zap.Int64("vehicle_id", v.ID))
	return v, nil
}

func (s *service) GetAll(ctx context.Context, filter store.Filter) ([]Vehicle, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) GetByID(ctx context.Context, id int64) (Vehicle, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) Update(ctx context.Context, id int64, req UpdateVehicleRequest) (Vehicle, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	v, err := s.repo.Update(ctx, id, func(v *Vehicle) error {
		if req.BranchID != nil {
			v.BranchID = *req.BranchID
		}
		if req.VehicleTypeID != nil {
			v.VehicleTypeID = *req.VehicleTypeID
		}
		if req.PlateNumber != nil {
			v.PlateNumber = normalizePlate(*req.PlateNumber)
		}
		if req.IsActive != nil {
			v.IsActive = *req.IsActive
		}
		return nil
	})
	if err != nil {
		log.Warn("update vehicle failed", zap.Int64("vehicle_id", id), zap.Error(err))
		return Vehicle{}, err
	}

	log.Info("update vehicle success", zap.Int64("vehicle_id", id))
	return v, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	log := contextutil.GetLogger(ctx, s.logger)
	if err := s.repo.Delete(ctx, id); err != nil {
		log.Warn("delete vehicle failed", zap.Int64("vehicle_id", id), zap.Error(err))
		return err
	}
	log.Info("delete vehicle success", zap.Int64("vehicle_id", id))
	return nil
}
