package token_test

import (
	"context"
	"testing"
	"time"

	autherrors "go-dinas/internal/auth/errors"
	"go-dinas/internal/shared/token"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestManager_IssueParse(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 4, 20, 8, 0, 0, 0, time.UTC)
	m := token.NewManager("secret", time.Hour, token.NewMemoryDenylist(fixedClock(now)), token.WithClock(fixedClock(now)))

	raw, exp, err := m.Issue(token.Claims{AccountID: 1, RoleID: 2, Role: "Administrator", Branches: []int64{1, 3}})
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), exp)

	claims, err := m.Parse(ctx, raw)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.AccountID)
	assert.True(t, claims.HasBranch(3))
	assert.False(t, claims.HasBranch(2))
	assert.NotEmpty(t, claims.ID)

	t.Run("wrong secret", func(t *testing.T) {
		other := token.NewManager("other", time.Hour, nil, token.WithClock(fixedClock(now)))
		_, err := other.Parse(ctx, raw)
		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		later := token.NewManager("secret", time.Hour, nil, token.WithClock(fixedClock(now.Add(2*time.Hour))))
		_, err := later.Parse(ctx, raw)
		assert.ErrorIs(t, err, autherrors.ErrTokenExpired)
	})

	t.Run("revoked", func(t *testing.T) {
		require.NoError(t, m.Revoke(ctx, claims))
		_, err := m.Parse(ctx, raw)
		assert.ErrorIs(t, err, autherrors.ErrTokenRevoked)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Parse(ctx, "not-a-token")
		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})
}

func TestRedisDenylist(t *testing.T) {
	ctx := context.Background()
	rdb, mock := redismock.NewClientMock()
	d := token.NewRedisDenylist(rdb)

	mock.ExpectSet("auth:denylist:abc", "1", 30*time.Minute).SetVal("OK")
	require.NoError(t, d.Add(ctx, "abc", 30*time.Minute))

	mock.ExpectGet("auth:denylist:abc").SetVal("1")
	found, err := d.Contains(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, found)

	mock.ExpectGet("auth:denylist:zzz").RedisNil()
	found, err = d.Contains(ctx, "zzz")
	require.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemoryDenylist_Expires(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := now
	d := token.NewMemoryDenylist(func() time.Time { return clock })

	require.NoError(t, d.Add(ctx, "jti", time.Minute))
	found, _ := d.Contains(ctx, "jti")
	assert.True(t, found)

	clock = now.Add(time.Minute)
	found, _ = d.Contains(ctx, "jti")
	assert.False(t, found)
}
