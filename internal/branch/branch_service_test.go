package branch_test

import (
	"context"
	"testing"

	"go-dinas/internal/branch"
	brancherrors "go-dinas/internal/branch/errors"
	"go-dinas/internal/shared/ptr"
	"go-dinas/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupBranchService(t *testing.T) branch.Service {
	t.Helper()
	db := store.New()
	return branch.NewService(branch.NewRepository(db))
}

func seed(t *testing.T, svc branch.Service) {
	t.Helper()
	ctx := context.Background()
	for _, req := range []branch.CreateBranchRequest{
		{Code: "JKT", Name: "Jakarta", Address: "Jl. Sudirman No. 1"},
		{Code: "SBY", Name: "Surabaya", Address: "Jl. Pemuda No. 2"},
		{Code: "BDG", Name: "Bandung", Address: "Jl. Asia Afrika No. 3", IsActive: ptr.Of(false)},
	} {
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
	}
}

func TestBranchService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("stores upper-case code and defaults active", func(t *testing.T) {
		svc := setupBranchService(t)
		b, err := svc.Create(ctx, branch.CreateBranchRequest{Code: " mlg ", Name: "Malang"})
		require.NoError(t, err)
		assert.Equal(t, "MLG", b.Code)
		assert.True(t, b.IsActive)
		assert.Equal(t, int64(1), b.ID)
	})

	t.Run("case-insensitive duplicate code", func(t *testing.T) {
		svc := setupBranchService(t)
		seed(t, svc)
		_, err := svc.Create(ctx, branch.CreateBranchRequest{Code: "jkt", Name: "Jakarta Timur"})
		assert.ErrorIs(t, err, store.ErrConflict)
	})

	t.Run("invalid code", func(t *testing.T) {
		svc := setupBranchService(t)
		_, err := svc.Create(ctx, branch.CreateBranchRequest{Code: "TOOLONG", Name: "x"})
		assert.ErrorIs(t, err, brancherrors.ErrInvalidBranchCode)
		assert.ErrorIs(t, err, store.ErrValidation)
	})
}

func TestBranchService_GetAll(t *testing.T) {
	ctx := context.Background()
	svc := setupBranchService(t)
	seed(t, svc)

	got, err := svc.GetAll(ctx, store.Filter{IsActive: ptr.Of(true), Search: "jak"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Jakarta", got[0].Name)

	got, err = svc.GetAll(ctx, store.Filter{IsActive: ptr.Of(false)})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "BDG", got[0].Code)
}

func TestBranchService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update keeps other fields", func(t *testing.T) {
		svc := setupBranchService(t)
		seed(t, svc)
		b, err := svc.Update(ctx, 3, branch.UpdateBranchRequest{IsActive: ptr.Of(true)})
		require.NoError(t, err)
		assert.True(t, b.IsActive)
		assert.Equal(t, "Bandung", b.Name)
		assert.Equal(t, "Jl. Asia Afrika No. 3", b.Address)
	})

	t.Run("missing id", func(t *testing.T) {
		svc := setupBranchService(t)
		_, err := svc.Update(ctx, 99, branch.UpdateBranchRequest{Name: ptr.Of("x")})
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("code taken by another branch", func(t *testing.T) {
		svc := setupBranchService(t)
		seed(t, svc)
		_, err := svc.Update(ctx, 2, branch.UpdateBranchRequest{Code: ptr.Of("bdg")})
		assert.ErrorIs(t, err, store.ErrConflict)
	})
}

func TestBranchService_DeleteAndGetByIDs(t *testing.T) {
	ctx := context.Background()
	svc := setupBranchService(t)
	seed(t, svc)

	require.NoError(t, svc.Delete(ctx, 2))
	assert.ErrorIs(t, svc.Delete(ctx, 2), store.ErrNotFound)

	got, err := svc.GetByIDs(ctx, []int64{3, 2, 1})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "BDG", got[0].Code)
	assert.Equal(t, "JKT", got[1].Code)
}
