package catalog

import (
	"context"
	"strings"

	catalogerrors "go-dinas/internal/catalog/errors"
	"go-dinas/internal/shared/apperror"
	"go-dinas/internal/shared/contextutil"
	"go-dinas/internal/shared/ptr"
	"go-dinas/internal/store"

	"go.uber.org/zap"
)

const maxCodeLength = 10

type Service interface {
	Kind() Kind
	Create(ctx context.Context, req CreateItemRequest) (Item, error)
	GetAll(ctx context.Context, filter store.Filter) ([]Item, error)
	GetByID(ctx context.Context, id int64) (Item, error)
	Update(ctx context.Context, id int64, req UpdateItemRequest) (Item, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	kind   Kind
	repo   Repository
	logger *zap.Logger
}

func NewService(kind Kind, repo Repository, logger ...*zap.Logger) Service {
	name := "catalog." + kind.Collection + ".service"
	l := zap.L().Named(name)
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named(name)
	}
	return &service{kind: kind, repo: repo, logger: l}
}

func normalizeCode(code string) (string, error) {
	code, ok := apperror.NormalizeEntityCode(code, maxCodeLength)
	if !ok {
		return "", catalogerrors.ErrInvalidCode
	}
	return code, nil
}

func (s *service) Kind() Kind {
	return s.kind
}

func (s *service) Create(ctx context.Context, req CreateItemRequest) (Item, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	code, err := normalizeCode(req.Code)
	if err != nil {
		return Item{}, err
	}

	item, err := s.repo.Create(ctx, Item{
		Code:     code,
		Name:     strings.TrimSpace(req.Name),
		IsActive: ptr.ValueOr(req.IsActive, true),
	})
	if err != nil {
		log.Warn("create "+s.kind.Label+" failed", zap.String("code", code), zap.Error(err))
		return Item{}, err
	}

	log.Info("create "+s.kind.Label+" success", zap.Int64("id", item.ID))
	return item, nil
}

func (s *service) GetAll(ctx context.Context, filter store.Filter) ([]Item, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) GetByID(ctx context.Context, id int64) (Item, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) Update(ctx context.Context, id int64, req UpdateItemRequest) (Item, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	var code string
	if req.Code != nil {
		var err error
		if code, err = normalizeCode(*req.Code); err != nil {
			return Item{}, err
		}
	}

	item, err := s.repo.Update(ctx, id, func(i *Item) error {
		if req.Code != nil {
			i.Code = code
		}
		if req.Name != nil {
			i.Name = strings.TrimSpace(*req.Name)
		}
		if req.IsActive != nil {
			i.IsActive = *req.IsActive
		}
		return nil
	})
	if err != nil {
		log.Warn("update "+s.kind.Label+" failed", zap.Int64("id", id), zap.Error(err))
		return Item{}, err
	}

	log.Info("update "+s.kind.Label+" success", zap.Int64("id", id))
	return item, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	log := contextutil.GetLogger(ctx, s.logger)
	if err := s.repo.Delete(ctx, id); err != nil {
		log.Warn("delete "+s.kind.Label+" failed", zap.Int64("id", id), zap.Error(err))
		return err
	}
	log.Info("delete "+s.kind.Label+" success", zap.Int64("id", id))
	return nil
}
