package middleware

import (
	"context"

	autherrors "go-dinas/internal/auth/errors"
	"go-dinas/internal/domain"

	"github.com/gin-gonic/gin"
)

// RBACService adalah interface lokal.
// Apapun package yang punya method Enforce(domain.EnforceRequest) bisa masuk ke sini.
type RBACService interface {
	Enforce(ctx context.Context, req domain.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		accountID := AccountID(c)
		if accountID == 0 {
			abortWith(c, autherrors.ErrTokenMissing)
			return
		}

		allowed, err := service.Enforce(c.Request.Context(), domain.EnforceRequest{
			AccountID: accountID,
			BranchID:  c.GetInt64(KeyBranchID),
			Resource:  resource,
			Action:    action,
		})
		if err != nil {
			abortWith(c, err)
			return
		}
		if !allowed {
			abortWith(c, autherrors.ErrForbidden.WithDetails(map[string]string{
				"required": resource + ":" + action,
			}))
			return
		}
		c.Next()
	}
}

