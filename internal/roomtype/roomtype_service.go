package roomtype

import (
	"context"
	"strings"

	roomtypeerrors "go-dinas/internal/roomtype/errors"
	"go-dinas/internal/shared/apperror"
	"go-dinas/internal/shared/contextutil"
	"go-dinas/internal/shared/ptr"
	"go-dinas/internal/store"

	"go.uber.org/zap"
)

const maxCodeLength = 10

type Service interface {
	Create(ctx context.Context, req CreateRoomTypeRequest) (RoomType, error)
	GetAll(ctx context.Context, filter store.Filter) ([]RoomType, error)
	GetByID(ctx context.Context, id int64) (RoomType, error)
	Update(ctx context.Context, id int64, req UpdateRoomTypeRequest) (RoomType, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("roomtype.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("roomtype.service")
	}
	return &service{repo: repo, logger: l}
}

func normalizeCode(code string) (string, error) {
	code, ok := apperror.NormalizeEntityCode(code, maxCodeLength)
	if !ok {
		return "", roomtypeerrors.ErrInvalidCode
	}
	return code, nil
}

func (s *service) Create(ctx context.Context, req CreateRoomTypeRequest) (RoomType, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	code, err := normalizeCode(req.Code)
	if err != nil {
		return RoomType{}, err
	}

	rt, err := s.repo.Create(ctx, RoomType{
		Code:     code,
		TypeName: strings.TrimSpace(req.TypeName),
		HotelIDs: dedupeHotels(req.HotelIDs),
		Price:    req.Price,
		Capacity: req.Capacity,
		IsActive: ptr.ValueOr(req.IsActive, true),
	})
	if err != nil {
		log.Warn("create room type failed", zap.String("code", code), zap.Error(err))
		return RoomType{}, err
	}

	log.Info("create room type success", zap.Int64("room_type_id", rt.ID))
	return rt, nil
}

func (s *service) GetAll(ctx context.Context, filter store.Filter) ([]RoomType, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) GetByID(ctx context.Context, id int64) (RoomType, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) Update(ctx context.Context, id int64, req UpdateRoomTypeRequest) (RoomType, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	var code string
	if req.Code != nil {
		var err error
		if code, err = normalizeCode(*req.Code); err != nil {
			return RoomType{}, err
		}
	}

	rt, err := s.repo.Update(ctx, id, func(rt *RoomType) error {
		if req.Code != nil {
			rt.Code = code
		}
		if req.TypeName != nil {
			rt.TypeName = strings.TrimSpace(*req.TypeName)
		}
		if req.HotelIDs != nil {
			rt.HotelIDs = dedupeHotels(req.HotelIDs)
		}
		if req.Price != nil {
			rt.Price = *req.Price
		}
		if req.Capacity != nil {
			rt.Capacity = *req.Capacity
		}
		if req.IsActive != nil {
			rt.IsActive = *req.IsActive
		}
		return nil
	})
	if err != nil {
		log.Warn("update room type failed", zap.Int64("room_type_id", id), zap.Error(err))
		return RoomType{}, err
	}

	log.Info("update room type success", zap.Int64("room_type_id", id))
	return rt, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	log := contextutil.GetLogger(ctx, s.logger)
	if err := s.repo.Delete(ctx, id); err != nil {
		log.Warn("delete room type failed", zap.Int64("room_type_id", id), zap.Error(err))
		return err
	}
	log.Info("delete room type success", zap.Int64("room_type_id", id))
	return nil
}
