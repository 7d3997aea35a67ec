package rbac_test

import (
	"context"
	"errors"
	"testing"

	"go-dinas/internal/domain"
	"go-dinas/internal/rbac"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	roles  []domain.RolePolicy
	grants []domain.AccountGrant
	err    error
}

func (f *fakeRepo) RolePolicies(context.Context) ([]domain.RolePolicy, error) {
	return f.roles, f.err
}

func (f *fakeRepo) AccountGrants(context.Context) ([]domain.AccountGrant, error) {
	return f.grants, f.err
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		roles: []domain.RolePolicy{
			{
				RoleID: 1,
				Active: true,
				Permissions: map[string]domain.Permission{
					domain.ResourceBranch: {View: true, Add: true},
					domain.ResourceOrders: {View: true, Approve: domain.ApprovePermission{Domestic: true}},
				},
			},
			{
				RoleID:      2,
				Active:      false,
				Permissions: map[string]domain.Permission{domain.ResourceBranch: {View: true}},
			},
		},
		grants: []domain.AccountGrant{
			{AccountID: 10, RoleID: 1, BranchIDs: []int64{1, 2}, Active: true},
			{AccountID: 11, RoleID: 2, BranchIDs: []int64{1}, Active: true},
			{AccountID: 12, RoleID: 1, BranchIDs: []int64{1}, Active: false},
		},
	}
}

func enforce(t *testing.T, svc rbac.Service, account, branch int64, resource, action string) bool {
	t.Helper()
	ok, err := svc.Enforce(context.Background(), domain.EnforceRequest{
		AccountID: account, BranchID: branch, Resource: resource, Action: action,
	})
	require.NoError(t, err)
	return ok
}

func TestRBACService_Enforce(t *testing.T) {
	svc, err := rbac.NewService(context.Background(), newFakeRepo())
	require.NoError(t, err)

	tests := []struct {
		name     string
		account  int64
		branch   int64
		resource string
		action   string
		want     bool
	}{
		{"granted action", 10, 1, domain.ResourceBranch, domain.ActionView, true},
		{"granted in second branch", 10, 2, domain.ResourceBranch, domain.ActionAdd, true},
		{"not granted action", 10, 1, domain.ResourceBranch, domain.ActionDelete, false},
		{"approval flag", 10, 1, domain.ResourceOrders, domain.ActionApproveDomestic, true},
		{"unassigned branch", 10, 3, domain.ResourceBranch, domain.ActionView, false},
		{"no branch selected uses first", 10, 0, domain.ResourceBranch, domain.ActionView, true},
		{"inactive role", 11, 1, domain.ResourceBranch, domain.ActionView, false},
		{"inactive account", 12, 1, domain.ResourceBranch, domain.ActionView, false},
		{"unknown account", 99, 1, domain.ResourceBranch, domain.ActionView, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, enforce(t, svc, tt.account, tt.branch, tt.resource, tt.action))
		})
	}
}

func TestRBACService_Reload(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc, err := rbac.NewService(ctx, repo)
	require.NoError(t, err)
	require.False(t, enforce(t, svc, 11, 1, domain.ResourceBranch, domain.ActionView))

	repo.roles[1].Active = true
	require.NoError(t, svc.Reload(ctx))
	assert.True(t, enforce(t, svc, 11, 1, domain.ResourceBranch, domain.ActionView))

	t.Run("failed reload keeps previous policy", func(t *testing.T) {
		repo.err = errors.New("store closed")
		assert.Error(t, svc.Reload(ctx))
		assert.True(t, enforce(t, svc, 11, 1, domain.ResourceBranch, domain.ActionView))
	})
}

func TestRBACService_Permissions(t *testing.T) {
	svc, err := rbac.NewService(context.Background(), newFakeRepo())
	require.NoError(t, err)

	perms, err := svc.Permissions(context.Background(), 10, 1)
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{
		domain.ResourceBranch: {domain.ActionView, domain.ActionAdd},
		domain.ResourceOrders: {domain.ActionView, domain.ActionApproveDomestic},
	}, perms)

	none, err := svc.Permissions(context.Background(), 10, 3)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestNewService_SourceError(t *testing.T) {
	_, err := rbac.NewService(context.Background(), &fakeRepo{err: errors.New("boom")})
	assert.Error(t, err)
}
