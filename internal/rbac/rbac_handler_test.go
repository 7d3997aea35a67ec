package rbac_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-dinas/internal/domain"
	"go-dinas/internal/middleware"
	"go-dinas/internal/rbac"
	"go-dinas/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeRBACService struct {
	rbac.Service
	EnforceFn     func(ctx context.Context, req domain.EnforceRequest) (bool, error)
	PermissionsFn func(ctx context.Context, accountID, branchID int64) (map[string][]string, error)
}

func (f *fakeRBACService) Enforce(ctx context.Context, req domain.EnforceRequest) (bool, error) {
	return f.EnforceFn(ctx, req)
}

func (f *fakeRBACService) Permissions(ctx context.Context, accountID, branchID int64) (map[string][]string, error) {
	return f.PermissionsFn(ctx, accountID, branchID)
}

func newTestContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Set(middleware.KeyAccountID, int64(10))
	c.Set(middleware.KeyBranchID, int64(2))
	return c, w
}

func TestRBACHandler_Check(t *testing.T) {
	svc := &fakeRBACService{
		EnforceFn: func(ctx context.Context, req domain.EnforceRequest) (bool, error) {
			assert.Equal(t, domain.EnforceRequest{
				AccountID: 10, BranchID: 2, Resource: "orders", Action: "set_biaya",
			}, req)
			return true, nil
		},
	}
	c, w := newTestContext(http.MethodPost, "/api/v1/rbac/check", `{"resource":"orders","action":"set_biaya"}`)

	rbac.NewHandler(svc).Check(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"allowed":true`)
}

func TestRBACHandler_CheckValidation(t *testing.T) {
	c, w := newTestContext(http.MethodPost, "/api/v1/rbac/check", `{"resource":"orders"}`)

	rbac.NewHandler(&fakeRBACService{}).Check(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestRBACHandler_Permissions(t *testing.T) {
	svc := &fakeRBACService{
		PermissionsFn: func(ctx context.Context, accountID, branchID int64) (map[string][]string, error) {
			return map[string][]string{"branch": {"view"}}, nil
		},
	}
	c, w := newTestContext(http.MethodGet, "/api/v1/rbac/permissions", "")

	rbac.NewHandler(svc).Permissions(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"branchId":2`)
	assert.Contains(t, w.Body.String(), `"branch":["view"]`)
}
