package auth

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	autherrors "go-dinas/internal/auth/errors"
	"go-dinas/internal/branch"
	"go-dinas/internal/domain"
	"go-dinas/internal/role"
	"go-dinas/internal/shared/contextutil"
	"go-dinas/internal/shared/ptr"
	"go-dinas/internal/shared/token"
	"go-dinas/internal/store"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

// TokenIssuer is the part of token.Manager the auth service needs.
type TokenIssuer interface {
	Issue(c token.Claims) (string, time.Time, error)
	Revoke(ctx context.Context, c *token.Claims) error
}

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	CurrentUser(ctx context.Context, accountID int64) (UserProfile, error)
	BranchesForAccount(ctx context.Context, accountID int64) ([]branch.Branch, error)
	Logout(ctx context.Context, claims *token.Claims) error
	CreateAccount(ctx context.Context, req CreateAccountRequest) (Account, error)
}

type service struct {
	repo     Repository
	roles    role.Repository
	branches branch.Repository
	tokens   TokenIssuer
	reloader domain.PolicyReloader
	logger   *zap.Logger
}

// NewService: reloader may be nil, e.g. in tests.
func NewService(
	repo Repository,
	roles role.Repository,
	branches branch.Repository,
	tokens TokenIssuer,
	reloader domain.PolicyReloader,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		repo:     repo,
		roles:    roles,
		branches: branches,
		tokens:   tokens,
		reloader: reloader,
		logger:   l,
	}
}

func (s *service) findByEmail(ctx context.Context, email string) (Account, bool, error) {
	accounts, err := s.repo.List(ctx, store.Filter{}.WithAttr("email", strings.ToLower(strings.TrimSpace(email))))
	if err != nil {
		return Account{}, false, err
	}
	if len(accounts) == 0 {
		return Account{}, false, nil
	}
	return accounts[0], true, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	acc, found, err := s.findByEmail(ctx, req.Email)
	if err != nil {
		return LoginResponse{}, err
	}
	// Unknown, inactive and wrong password all answer the same way.
	if !found || !acc.IsActive {
		log.Warn("login rejected", zap.String("email", req.Email), zap.Bool("found", found))
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(req.Password)); err != nil {
		log.Warn("login rejected", zap.Int64("account_id", acc.ID), zap.String("reason", "password"))
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	profile, err := s.profile(ctx, acc)
	if err != nil {
		return LoginResponse{}, err
	}

	branchIDs := make([]int64, 0, len(profile.Branches))
	for _, b := range profile.Branches {
		branchIDs = append(branchIDs, b.ID)
	}

	signed, exp, err := s.tokens.Issue(token.Claims{
		AccountID: acc.ID,
		RoleID:    profile.Role.ID,
		Role:      profile.Role.Name,
		Branches:  branchIDs,
	})
	if err != nil {
		log.Error("issue token failed", zap.Int64("account_id", acc.ID), zap.Error(err))
		return LoginResponse{}, err
	}

	log.Info("login success", zap.Int64("account_id", acc.ID), zap.Int("branches", len(branchIDs)))
	return LoginResponse{AccessToken: signed, ExpiresAt: exp, User: profile}, nil
}

func (s *service) CurrentUser(ctx context.Context, accountID int64) (UserProfile, error) {
	acc, err := s.repo.Get(ctx, accountID)
	if err != nil {
		return UserProfile{}, err
	}
	if !acc.IsActive {
		return UserProfile{}, autherrors.ErrAccountInactive
	}
	return s.profile(ctx, acc)
}

func (s *service) BranchesForAccount(ctx context.Context, accountID int64) ([]branch.Branch, error) {
	acc, err := s.repo.Get(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return s.activeBranches(ctx, acc.BranchIDs)
}

func (s *service) Logout(ctx context.Context, claims *token.Claims) error {
	if err := s.tokens.Revoke(ctx, claims); err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("revoke token failed", zap.Error(err))
		return err
	}
	return nil
}

func (s *service) CreateAccount(ctx context.Context, req CreateAccountRequest) (Account, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if len(req.Password) < minPasswordLength {
		return Account{}, autherrors.ErrWeakPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return Account{}, err
	}

	ids := slices.Clone(req.BranchIDs)
	slices.Sort(ids)
	acc, err := s.repo.Create(ctx, Account{
		Email:        strings.TrimSpace(req.Email),
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: string(hash),
		RoleID:       req.RoleID,
		BranchIDs:    slices.Compact(ids),
		IsActive:     ptr.ValueOr(req.IsActive, true),
	})
	if err != nil {
		log.Warn("create account failed", zap.String("email", req.Email), zap.Error(err))
		return Account{}, err
	}

	if s.reloader != nil {
		if err := s.reloader.Reload(ctx); err != nil {
			log.Error("reload rbac policy failed", zap.Error(err))
		}
	}

	log.Info("create account success", zap.Int64("account_id", acc.ID))
	return acc, nil
}

func (s *service) profile(ctx context.Context, acc Account) (UserProfile, error) {
	r, err := s.roles.Get(ctx, acc.RoleID)
	if err != nil {
		return UserProfile{}, err
	}
	branches, err := s.activeBranches(ctx, acc.BranchIDs)
	if err != nil {
		return UserProfile{}, err
	}
	return UserProfile{
		ID:       acc.ID,
		Name:     acc.Name,
		Email:    acc.Email,
		Role:     RoleSummary{ID: r.ID, Name: r.Name},
		Branches: branches,
	}, nil
}

// activeBranches skips branches that were deactivated or removed since assignment.
func (s *service) activeBranches(ctx context.Context, ids []int64) ([]branch.Branch, error) {
	out := make([]branch.Branch, 0, len(ids))
	for _, id := range ids {
		b, err := s.branches.Get(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if b.IsActive {
			out = append(out, b)
		}
	}
	return out, nil
}
