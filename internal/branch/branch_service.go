package branch

import (
	"context"
	"errors"
	"strings"

	brancherrors "go-dinas/internal/branch/errors"
	"go-dinas/internal/shared/apperror"
	"go-dinas/internal/shared/contextutil"
	"go-dinas/internal/shared/ptr"
	"go-dinas/internal/store"

	"go.uber.org/zap"
)

const maxCodeLength = 5

//go:generate mockgen -source=branch_service.go -destination=mock/branch_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateBranchRequest) (Branch, error)
	GetAll(ctx context.Context, filter store.Filter) ([]Branch, error)
	GetByID(ctx context.Context, id int64) (Branch, error)
	GetByIDs(ctx context.Context, ids []int64) ([]Branch, error)
	Update(ctx context.Context, id int64, req UpdateBranchRequest) (Branch, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("branch.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("branch.service")
	}
	return &service{repo: repo, logger: l}
}

// normalizeCode: kode cabang disimpan uppercase.
func normalizeCode(code string) (string, error) {
	code, ok := apperror.NormalizeEntityCode(code, maxCodeLength)
	if !ok {
		return "", brancherrors.ErrInvalidBranchCode
	}
	return code, nil
}

func (s *service) Create(ctx context.Context, req CreateBranchRequest) (Branch, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create branch requested", zap.String("code", req.Code))

	code, err := normalizeCode(req.Code)
	if err != nil {
		return Branch{}, err
	}

	b, err := s.repo.Create(ctx, Branch{
		Code:     code,
		Name:     strings.TrimSpace(req.Name),
		Address:  strings.TrimSpace(req.Address),
		IsActive: ptr.ValueOr(req.IsActive, true),
	})
	if err != nil {
		log.Warn("create branch failed", zap.String("code", code), zap.Error(err))
		return Branch{}, err
	}

	log.Info("create branch success", zap.Int64("branch_id", b.ID))
	return b, nil
}

func (s *service) GetAll(ctx context.Context, filter store.Filter) ([]Branch, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) GetByID(ctx context.Context, id int64) (Branch, error) {
	return s.repo.Get(ctx, id)
}

// GetByIDs keeps the order of ids and skips ids that no longer exist.
func (s *service) GetByIDs(ctx context.Context, ids []int64) ([]Branch, error) {
	out := make([]Branch, 0, len(ids))
	for _, id := range ids {
		b, err := s.repo.Get(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func (s *service) Update(ctx context.Context, id int64, req UpdateBranchRequest) (Branch, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("update branch requested", zap.Int64("branch_id", id))

	var code string
	if req.Code != nil {
		var err error
		if code, err = normalizeCode(*req.Code); err != nil {
			return Branch{}, err
		}
	}

	b, err := s.repo.Update(ctx, id, func(b *Branch) error {
		if req.Code != nil {
			b.Code = code
		}
		if req.Name != nil {
			b.Name = strings.TrimSpace(*req.Name)
		}
		if req.Address != nil {
			b.Address = strings.TrimSpace(*req.Address)
		}
		if req.IsActive != nil {
			b.IsActive = *req.IsActive
		}
		return nil
	})
	if err != nil {
		log.Warn("update branch failed", zap.Int64("branch_id", id), zap.Error(err))
		return Branch{}, err
	}

	log.Info("update branch success", zap.Int64("branch_id", id))
	return b, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	log := contextutil.GetLogger(ctx, s.logger)
	if err := s.repo.Delete(ctx, id); err != nil {
		log.Warn("delete branch failed", zap.Int64("branch_id", id), zap.Error(err))
		return err
	}
	log.Info("delete branch success", zap.Int64("branch_id", id))
	return nil
}
