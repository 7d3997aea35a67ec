package rbac

import (
	"net/http"

	"go-dinas/internal/domain"
	"go-dinas/internal/middleware"
	"go-dinas/internal/shared/apperror"
	"go-dinas/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("rbac.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("rbac request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Check answers whether the caller may perform an action in the selected branch.
func (h *Handler) Check(c *gin.Context) {
	var req CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	allowed, err := h.service.Enforce(c.Request.Context(), domain.EnforceRequest{
		AccountID: middleware.AccountID(c),
		BranchID:  c.GetInt64(middleware.KeyBranchID),
		Resource:  req.Resource,
		Action:    req.Action,
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, CheckResponse{Allowed: allowed}, nil)
}

func (h *Handler) Permissions(c *gin.Context) {
	branchID := c.GetInt64(middleware.KeyBranchID)
	perms, err := h.service.Permissions(c.Request.Context(), middleware.AccountID(c), branchID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, PermissionsResponse{BranchID: branchID, Permissions: perms}, nil)
}
