package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-dinas/internal/domain"
	"go-dinas/internal/middleware"
	"go-dinas/internal/shared/contextutil"
	"go-dinas/internal/shared/token"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRBAC struct {
	EnforceFn func(ctx context.Context, req domain.EnforceRequest) (bool, error)
}

func (f *fakeRBAC) Enforce(ctx context.Context, req domain.EnforceRequest) (bool, error) {
	return f.EnforceFn(ctx, req)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func newManager() *token.Manager {
	return token.NewManager("test-secret", time.Hour, token.NewMemoryDenylist(nil))
}

func issue(t *testing.T, m *token.Manager, branches ...int64) string {
	t.Helper()
	raw, _, err := m.Issue(token.Claims{AccountID: 7, RoleID: 1, Role: "Administrator", Branches: branches})
	require.NoError(t, err)
	return raw
}

func TestAuthMiddleware(t *testing.T) {
	m := newManager()
	r := setupRouter()
	r.GET("/me", middleware.AuthMiddleware(m), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"account": middleware.AccountID(c),
			"ctx":     contextutil.GetAccountID(c.Request.Context()),
		})
	})

	t.Run("bearer header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+issue(t, m, 1))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"account":7,"ctx":7}`, w.Body.String())
	})

	t.Run("cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: issue(t, m, 1)})
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Token not found")
	})

	t.Run("revoked token", func(t *testing.T) {
		raw := issue(t, m, 1)
		claims, err := m.Parse(context.Background(), raw)
		require.NoError(t, err)
		require.NoError(t, m.Revoke(context.Background(), claims))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+raw)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "revoked")
	})
}

func TestBranchScope(t *testing.T) {
	m := newManager()
	r := setupRouter()
	r.GET("/scoped", middleware.AuthMiddleware(m), middleware.BranchScope(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"branch": c.GetInt64(middleware.KeyBranchID)})
	})
	raw := issue(t, m, 2, 3)

	cases := []struct {
		name   string
		header string
		code   int
		body   string
	}{
		{name: "defaults to first branch", code: http.StatusOK, body: `{"branch":2}`},
		{name: "selected branch", header: "3", code: http.StatusOK, body: `{"branch":3}`},
		{name: "foreign branch", header: "1", code: http.StatusForbidden},
		{name: "garbage", header: "x", code: http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/scoped", nil)
			req.Header.Set("Authorization", "Bearer "+raw)
			if tc.header != "" {
				req.Header.Set(middleware.BranchHeader, tc.header)
			}
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.code, w.Code)
			if tc.body != "" {
				assert.JSONEq(t, tc.body, w.Body.String())
			}
		})
	}
}

func TestRBACAuthorize(t *testing.T) {
	withAccount := func(c *gin.Context) {
		c.Set(middleware.KeyAccountID, int64(7))
		c.Set(middleware.KeyBranchID, int64(2))
		c.Next()
	}
	ok := func(c *gin.Context) { c.Status(http.StatusNoContent) }

	t.Run("allowed", func(t *testing.T) {
		svc := &fakeRBAC{EnforceFn: func(ctx context.Context, req domain.EnforceRequest) (bool, error) {
			assert.Equal(t, domain.EnforceRequest{AccountID: 7, BranchID: 2, Resource: "branch", Action: "edit"}, req)
			return true, nil
		}}
		r := setupRouter()
		r.GET("/x", withAccount, middleware.RBACAuthorize(svc, "branch", "edit"), ok)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("denied", func(t *testing.T) {
		svc := &fakeRBAC{EnforceFn: func(context.Context, domain.EnforceRequest) (bool, error) { return false, nil }}
		r := setupRouter()
		r.GET("/x", withAccount, middleware.RBACAuthorize(svc, "branch", "delete"), ok)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "branch:delete")
	})

	t.Run("enforcer error", func(t *testing.T) {
		svc := &fakeRBAC{EnforceFn: func(context.Context, domain.EnforceRequest) (bool, error) { return false, errors.New("boom") }}
		r := setupRouter()
		r.GET("/x", withAccount, middleware.RBACAuthorize(svc, "branch", "view"), ok)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("anonymous", func(t *testing.T) {
		r := setupRouter()
		r.GET("/x", middleware.RBACAuthorize(&fakeRBAC{}, "branch", "view"), ok)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRateLimitByUser(t *testing.T) {
	r := setupRouter()
	r.GET("/x", func(c *gin.Context) {
		c.Set(middleware.KeyAccountID, int64(1))
		c.Next()
	}, middleware.RateLimitByUser(0.001, 1), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRequestIDAndContextLogger(t *testing.T) {
	r := setupRouter()
	r.GET("/x", middleware.RequestID(), middleware.ContextLogger(nil), func(c *gin.Context) {
		c.String(http.StatusOK, contextutil.GetRequestID(c.Request.Context()))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-ID", "rid-42")
	r.ServeHTTP(w, req)

	assert.Equal(t, "rid-42", w.Body.String())
	assert.Equal(t, "rid-42", w.Header().Get("X-Request-ID"))
}

func TestIdempotency(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	calls := 0
	r := setupRouter()
	r.POST("/orders", func(c *gin.Context) {
		c.Set(middleware.KeyAccountID, int64(7))
		c.Next()
	}, middleware.Idempotency(rdb, nil), func(c *gin.Context) {
		calls++
		c.String(http.StatusCreated, "created")
	})

	cacheKey := middleware.IdempotencyCacheKey("/orders", 7, "k1")
	payload, _ := json.Marshal(middleware.IdempotentResponse{Status: http.StatusCreated, Body: "created"})

	mock.ExpectGet(cacheKey).RedisNil()
	mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(true)
	mock.ExpectSet(cacheKey, string(payload), 24*time.Hour).SetVal("OK")
	mock.ExpectDel(cacheKey + ":lock").SetVal(1)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", nil)
	req.Header.Set(middleware.IdempotencyHeader, "k1")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	mock.ExpectGet(cacheKey).SetVal(string(payload))
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/orders", nil)
	req.Header.Set(middleware.IdempotencyHeader, "k1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "created", w.Body.String())
	assert.Equal(t, "true", w.Header().Get("Idempotent-Replayed"))
	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_InFlight(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	r := setupRouter()
	r.POST("/orders", middleware.Idempotency(rdb, nil), func(c *gin.Context) {
		t.Fatal("handler must not run")
	})

	cacheKey := middleware.IdempotencyCacheKey("/orders", 0, "k2")
	mock.ExpectGet(cacheKey).RedisNil()
	mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", nil)
	req.Header.Set(middleware.IdempotencyHeader, "k2")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
