package plafond

import (
	"context"

	plafonderrors "go-dinas/internal/plafond/errors"
	"go-dinas/internal/shared/contextutil"
	"go-dinas/internal/shared/ptr"
	"go-dinas/internal/store"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, req CreatePlafondRequest) (Plafond, error)
	GetAll(ctx context.Context, filter store.Filter) ([]Plafond, error)
	GetByID(ctx context.Context, id int64) (Plafond, error)
	Update(ctx context.Context, id int64, req UpdatePlafondRequest) (Plafond, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("plafond.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("plafond.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreatePlafondRequest) (Plafond, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	p, err := s.repo.Create(ctx, Plafond{
		RoleID:        req.RoleID,
		Type:          req.Type,
		Amount:        req.Amount,
		EffectiveDate: req.EffectiveDate,
		IsActive:      ptr.ValueOr(req.IsActive, true),
		History:       []HistoryEntry{{Date: req.EffectiveDate, Amount: req.Amount}},
	})
	if err != nil {
		log.Warn("create plafond failed", zap.Int64("role_id", req.RoleID), zap.Error(err))
		return Plafond{}, err
	}

	log.Info("create plafond success",
		zap.Int64("plafond_id", p.ID),
		zap.String("amount", p.Amount.String()),
	)
	return p, nil
}

func (s *service) GetAll(ctx context.Context, filter store.Filter) ([]Plafond, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) GetByID(ctx context.Context, id int64) (Plafond, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) Update(ctx context.Context, id int64, req UpdatePlafondRequest) (Plafond, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if (req.Amount == nil) != (req.EffectiveDate == nil) {
		return Plafond{}, plafonderrors.ErrAmountDateTogether
	}

	p, err := s.repo.Update(ctx, id, func(p *Plafond) error {
		if req.RoleID != nil {
			p.RoleID = *req.RoleID
		}
		if req.Type != nil {
			p.Type = *req.Type
		}
		if req.IsActive != nil {
			p.IsActive = *req.IsActive
		}
		if req.Amount != nil {
			// Entri baru di depan supaya koreksi di tanggal yang sama menang.
			entry := HistoryEntry{Date: *req.EffectiveDate, Amount: *req.Amount}
			p.History = append([]HistoryEntry{entry}, p.History...)
			sortHistory(p.History)
			// Nilai berlaku selalu entri terbaru, termasuk saat input back-dated.
			p.Amount = p.History[0].Amount
			p.EffectiveDate = p.History[0].Date
		}
		return nil
	})
	if err != nil {
		log.Warn("update plafond failed", zap.Int64("plafond_id", id), zap.Error(err))
		return Plafond{}, err
	}

	log.Info("update plafond success", zap.Int64("plafond_id", id), zap.Int("history", len(p.History)))
	return p, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	log := contextutil.GetLogger(ctx, s.logger)
	if err := s.repo.Delete(ctx, id); err != nil {
		log.Warn("delete plafond failed", zap.Int64("plafond_id", id), zap.Error(err))
		return err
	}
	log.Info("delete plafond success", zap.Int64("plafond_id", id))
	return nil
}
