package role

import (
	"context"
	"strings"

	"go-dinas/internal/domain"
	"go-dinas/internal/shared/contextutil"
	"go-dinas/internal/shared/ptr"
	"go-dinas/internal/store"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, req CreateRoleRequest) (Role, error)
	GetAll(ctx context.Context, filter store.Filter) ([]Role, error)
	GetByID(ctx context.Context, id int64) (Role, error)
	Update(ctx context.Context, id int64, req UpdateRoleRequest) (Role, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo     Repository
	reloader domain.PolicyReloader
	logger   *zap.Logger
}

// NewService: reloader may be nil, e.g. in tests.
func NewService(repo Repository, reloader domain.PolicyReloader, logger ...*zap.Logger) Service {
	l := zap.L().Named("role.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("role.service")
	}
	return &service{repo: repo, reloader: reloader, logger: l}
}

func (s *service) reload(ctx context.Context) {
	if s.reloader == nil {
		return
	}
	if err := s.reloader.Reload(ctx); err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("reload rbac policy failed", zap.Error(err))
	}
}

func (s *service) Create(ctx context.Context, req CreateRoleRequest) (Role, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	r, err := s.repo.Create(ctx, Role{
		Name:        strings.TrimSpace(req.Name),
		IsActive:    ptr.ValueOr(req.IsActive, true),
		Permissions: req.Permissions,
	})
	if err != nil {
		log.Warn("create role failed", zap.String("name", req.Name), zap.Error(err))
		return Role{}, err
	}

	s.reload(ctx)
	log.Info("create role success", zap.Int64("role_id", r.ID))
	return r, nil
}

func (s *service) GetAll(ctx context.Context, filter store.Filter) ([]Role, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) GetByID(ctx context.Context, id int64) (Role, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) Update(ctx context.Context, id int64, req UpdateRoleRequest) (Role, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	r, err := s.repo.Update(ctx, id, func(r *Role) error {
		if req.Name != nil {
			r.Name = strings.TrimSpace(*req.Name)
		}
		if req.IsActive != nil {
			r.IsActive = *req.IsActive
		}
		if req.Permissions != nil {
			r.Permissions = clonePermissions(req.Permissions)
		}
		return nil
	})
	if err != nil {
		log.Warn("update role failed", zap.Int64("role_id", id), zap.Error(err))
		return Role{}, err
	}

	s.reload(ctx)
	log.Info("update role success", zap.Int64("role_id", id))
	return r, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	log := contextutil.GetLogger(ctx, s.logger)
	if err := s.repo.Delete(ctx, id); err != nil {
		log.Warn("delete role failed", zap.Int64("role_id", id), zap.Error(err))
		return err
	}
	s.reload(ctx)
	log.Info("delete role success", zap.Int64("role_id", id))
	return nil
}
