package messroom

import (
	"context"
	"strings"

	"go-dinas/internal/shared/contextutil"
	"go-dinas/internal/shared/ptr"
	"go-dinas/internal/store"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, req CreateMessRoomRequest) (MessRoom, error)
	GetAll(ctx context.Context, filter store.Filter) ([]MessRoom, error)
	GetByID(ctx context.Context, id int64) (MessRoom, error)
	Update(ctx context.Context, id int64, req UpdateMessRoomRequest) (MessRoom, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("messroom.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("messroom.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateMessRoomRequest) (MessRoom, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	m, err := s.repo.Create(ctx, MessRoom{
		BranchID:   req.BranchID,
		RoomNumber: strings.TrimSpace(req.RoomNumber),
		Gender:     req.Gender,
		Capacity:   req.Capacity,
		IsActive:   ptr.ValueOr(req.IsActive, true),
	})
	if err != nil {
		log.Warn("create mess room failed", zap.String("room_number", req.RoomNumber), zap.Error(err))
		return MessRoom{}, err
	}

	log.Info("create mess room success", zap.Int64("mess_room_id", m.ID))
	return m, nil
}

func (s *service) GetAll(ctx context.Context, filter store.Filter) ([]MessRoom, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) GetByID(ctx context.Context, id int64) (MessRoom, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) Update(ctx context.Context, id int64, req UpdateMessRoomRequest) (MessRoom, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	m, err := s.repo.Update(ctx, id, func(m *MessRoom) error {
		if req.BranchID != nil {
			m.BranchID = *req.BranchID
		}
		if req.RoomNumber != nil {
			m.RoomNumber = strings.TrimSpace(*req.RoomNumber)
		}
		if req.Gender != nil {
			m.Gender = *req.Gender
		}
		if req.Capacity != nil {
			m.Capacity = *req.Capacity
		}
		if req.IsActive != nil {
			m.IsActive = *req.IsActive
		}
		return nil
	})
	if err != nil {
		log.Warn("update mess room failed", zap.Int64("mess_room_id", id), zap.Error(err))
		return MessRoom{}, err
	}

	log.Info("update mess room success", zap.Int64("mess_room_id", id))
	return m, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	log := contextutil.GetLogger(ctx, s.logger)
	if err := s.repo.Delete(ctx, id); err != nil {
		log.Warn("delete mess room failed", zap.Int64("mess_room_id", id), zap.Error(err))
		return err
	}
	log.Info("delete mess room success", zap.Int64("mess_room_id", id))
	return nil
}
