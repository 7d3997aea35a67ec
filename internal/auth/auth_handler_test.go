package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-dinas/internal/auth"
	autherrors "go-dinas/internal/auth/errors"
	"go-dinas/internal/branch"
	"go-dinas/internal/middleware"
	"go-dinas/internal/shared/apperror"
	"go-dinas/internal/shared/token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthService struct {
	auth.Service
	LoginFn       func(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error)
	CurrentUserFn func(ctx context.Context, accountID int64) (auth.UserProfile, error)
	BranchesFn    func(ctx context.Context, accountID int64) ([]branch.Branch, error)
	LogoutFn      func(ctx context.Context, claims *token.Claims) error
}

func (f *fakeAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	return f.LoginFn(ctx, req)
}
func (f *fakeAuthService) CurrentUser(ctx context.Context, id int64) (auth.UserProfile, error) {
	return f.CurrentUserFn(ctx, id)
}
func (f *fakeAuthService) BranchesForAccount(ctx context.Context, id int64) ([]branch.Branch, error) {
	return f.BranchesFn(ctx, id)
}
func (f *fakeAuthService) Logout(ctx context.Context, claims *token.Claims) error {
	return f.LogoutFn(ctx, claims)
}

func newTestContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func TestAuthHandler_Login(t *testing.T) {
	body := `{"email":"admin@konimex.com","password":"admin123"}`

	t.Run("web client gets cookie", func(t *testing.T) {
		svc := &fakeAuthService{
			LoginFn: func(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
				assert.Equal(t, "admin@konimex.com", req.Email)
				return auth.LoginResponse{
					AccessToken: "signed",
					ExpiresAt:   time.Now().Add(time.Hour),
					User:        auth.UserProfile{ID: 1, Name: "Admin"},
				}, nil
			},
		}
		c, w := newTestContext(http.MethodPost, "/api/v1/auth/login", body)
		c.Request.Header.Set("X-Client-Type", "web")

		auth.NewHandler(svc, false).Login(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"access_token":"signed"`)
		cookie := w.Header().Get("Set-Cookie")
		assert.Contains(t, cookie, "access_token=signed")
		assert.Contains(t, cookie, "HttpOnly")
	})

	t.Run("api client gets no cookie", func(t *testing.T) {
		svc := &fakeAuthService{
			LoginFn: func(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
				return auth.LoginResponse{AccessToken: "signed", ExpiresAt: time.Now().Add(time.Hour)}, nil
			},
		}
		c, w := newTestContext(http.MethodPost, "/api/v1/auth/login", body)
		c.Request.Header.Set("User-Agent", "curl/8.0")

		auth.NewHandler(svc, false).Login(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Set-Cookie"))
	})

	t.Run("invalid credentials", func(t *testing.T) {
		svc := &fakeAuthService{
			LoginFn: func(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
				return auth.LoginResponse{}, autherrors.ErrInvalidCredentials
			},
		}
		c, w := newTestContext(http.MethodPost, "/api/v1/auth/login", body)

		auth.NewHandler(svc, false).Login(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid credentials")
	})

	t.Run("bad email rejected by binding", func(t *testing.T) {
		c, w := newTestContext(http.MethodPost, "/api/v1/auth/login", `{"email":"admin","password":"x"}`)

		auth.NewHandler(&fakeAuthService{}, false).Login(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})
}

func TestAuthHandler_Me(t *testing.T) {
	svc := &fakeAuthService{
		CurrentUserFn: func(ctx context.Context, id int64) (auth.UserProfile, error) {
			assert.Equal(t, int64(7), id)
			return auth.UserProfile{ID: 7, Name: "User", Branches: []branch.Branch{{ID: 1, Code: "JKT"}}}, nil
		},
	}
	c, w := newTestContext(http.MethodGet, "/api/v1/auth/me", "")
	c.Set(middleware.KeyAccountID, int64(7))

	auth.NewHandler(svc, false).Me(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"JKT"`)
}

func TestAuthHandler_Logout(t *testing.T) {
	claims := &token.Claims{AccountID: 7}
	var got *token.Claims
	svc := &fakeAuthService{
		LogoutFn: func(ctx context.Context, c *token.Claims) error {
			got = c
			return nil
		},
	}
	c, w := newTestContext(http.MethodPost, "/api/v1/auth/logout", "")
	c.Set(middleware.KeyClaims, claims)

	auth.NewHandler(svc, true).Logout(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Same(t, claims, got)
	cookie := w.Header().Get("Set-Cookie")
	assert.Contains(t, cookie, "access_token=;")
	assert.Contains(t, cookie, "Max-Age=0")
	assert.Contains(t, cookie, "Secure")
}
