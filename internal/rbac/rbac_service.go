package rbac

import (
	"context"
	"sync"

	"go-dinas/internal/domain"
	"go-dinas/internal/shared/contextutil"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	// Reload rebuilds every policy from the repository.
	Reload(ctx context.Context) error
	Enforce(ctx context.Context, req domain.EnforceRequest) (bool, error)
	Permissions(ctx context.Context, accountID, branchID int64) (map[string][]string, error)
}

type service struct {
	repo     Repository
	mu       sync.RWMutex
	enforcer *casbin.Enforcer
	// firstBranch holds each active account's default branch for requests without one.
	firstBranch map[int64]int64
	logger      *zap.Logger
}

// NewService loads the initial policy.
func NewService(ctx context.Context, repo Repository, logger ...*zap.Logger) (Service, error) {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	s := &service{repo: repo, logger: l}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *service) Reload(ctx context.Context) error {
	log := contextutil.GetLogger(ctx, s.logger)

	roles, err := s.repo.RolePolicies(ctx)
	if err != nil {
		return err
	}
	grants, err := s.repo.AccountGrants(ctx)
	if err != nil {
		return err
	}

	policies := make([][]string, 0)
	activeRoles := make(map[int64]bool, len(roles))
	for _, r := range roles {
		if !r.Active {
			continue
		}
		activeRoles[r.RoleID] = true
		for resource, perm := range r.Permissions {
			if !domain.IsKnownResource(resource) {
				continue
			}
			for _, action := range perm.Actions() {
				policies = append(policies, []string{roleSubject(r.RoleID), resource, action})
			}
		}
	}

	groupings := make([][]string, 0)
	seen := make(map[[2]int64]bool)
	firstBranch := make(map[int64]int64, len(grants))
	for _, g := range grants {
		if !g.Active || !activeRoles[g.RoleID] {
			continue
		}
		for _, b := range g.BranchIDs {
			key := [2]int64{g.AccountID, b}
			if seen[key] {
				continue
			}
			seen[key] = true
			if _, ok := firstBranch[g.AccountID]; !ok {
				firstBranch[g.AccountID] = b
			}
			groupings = append(groupings, []string{accountSubject(g.AccountID), roleSubject(g.RoleID), branchDomain(b)})
		}
	}

	e, err := NewEnforcer()
	if err != nil {
		return err
	}
	if len(policies) > 0 {
		if _, err := e.AddPolicies(policies); err != nil {
			return err
		}
	}
	if len(groupings) > 0 {
		if _, err := e.AddGroupingPolicies(groupings); err != nil {
			return err
		}
	}

	s.mu.Lock()
	s.enforcer = e
	s.firstBranch = firstBranch
	s.mu.Unlock()

	log.Info("rbac policy loaded",
		zap.Int("policies", len(policies)),
		zap.Int("groupings", len(groupings)),
	)
	return nil
}

func (s *service) Enforce(ctx context.Context, req domain.EnforceRequest) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	branchID := req.BranchID
	if branchID == 0 {
		branchID = s.firstBranch[req.AccountID]
	}
	if branchID == 0 {
		return false, nil
	}

	allowed, err := s.enforcer.Enforce(accountSubject(req.AccountID), branchDomain(branchID), req.Resource, req.Action)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("rbac enforce failed",
			zap.Int64("account_id", req.AccountID),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}
	if !allowed {
		contextutil.GetLogger(ctx, s.logger).Debug("rbac denied",
			zap.Int64("account_id", req.AccountID),
			zap.Int64("branch_id", branchID),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
		)
	}
	return allowed, nil
}

func (s *service) Permissions(ctx context.Context, accountID, branchID int64) (map[string][]string, error) {
	out := make(map[string][]string)
	for _, resource := range domain.Resources() {
		for _, action := range domain.Actions {
			ok, err := s.Enforce(ctx, domain.EnforceRequest{
				AccountID: accountID,
				BranchID:  branchID,
				Resource:  resource,
				Action:    action,
			})
			if err != nil {
				return nil, err
			}
			if ok {
				out[resource] = append(out[resource], action)
			}
		}
	}
	return out, nil
}
