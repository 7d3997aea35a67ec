package middleware

import (
	"context"
	"errors"
	"strconv"
	"strings"

	autherrors "go-dinas/internal/auth/errors"
	"go-dinas/internal/shared/apperror"
	"go-dinas/internal/shared/contextutil"
	"go-dinas/internal/shared/response"
	"go-dinas/internal/shared/token"

	"github.com/gin-gonic/gin"
)

const (
	KeyAccountID = "account_id"
	KeyRoleID    = "role_id"
	KeyBranches  = "branches"
	KeyBranchID  = "branch_id"
	KeyClaims    = "claims"
	KeyRawToken  = "raw_token"

	BranchHeader = "X-Branch-ID"
)

type TokenParser interface {
	Parse(ctx context.Context, raw string) (*token.Claims, error)
}

func abortWith(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
	c.Abort()
}

// AuthMiddleware menerima token dari header Authorization (Bearer) atau cookie access_token.
func AuthMiddleware(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			raw = ""
		}
		if raw == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				raw = cookie
			}
		}
		if raw == "" {
			abortWith(c, autherrors.ErrTokenMissing)
			return
		}

		claims, err := parser.Parse(c.Request.Context(), raw)
		if err != nil {
			var appErr *apperror.AppError
			if !errors.As(err, &appErr) {
				err = autherrors.ErrInvalidToken
			}
			abortWith(c, err)
			return
		}

		c.Set(KeyAccountID, claims.AccountID)
		c.Set(KeyRoleID, claims.RoleID)
		c.Set(KeyBranches, claims.Branches)
		c.Set(KeyClaims, claims)
		c.Set(KeyRawToken, raw)
		c.Request = c.Request.WithContext(contextutil.WithAccountID(c.Request.Context(), claims.AccountID))

		c.Next()
	}
}

// BranchScope memilih cabang aktif dari header X-Branch-ID. Tanpa header, cabang
// pertama di token dipakai. Cabang di luar token ditolak 403.
func BranchScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get(KeyClaims)
		claims, _ := v.(*token.Claims)
		if !ok || claims == nil {
			abortWith(c, autherrors.ErrTokenMissing)
			return
		}

		var branchID int64
		if raw := strings.TrimSpace(c.GetHeader(BranchHeader)); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || !claims.HasBranch(id) {
				abortWith(c, autherrors.ErrBranchNotAccessible)
				return
			}
			branchID = id
		} else if len(claims.Branches) > 0 {
			branchID = claims.Branches[0]
		}

		c.Set(KeyBranchID, branchID)
		c.Request = c.Request.WithContext(contextutil.WithBranchID(c.Request.Context(), branchID))
		c.Next()
	}
}

// AccountID returns the authenticated account, or 0.
func AccountID(c *gin.Context) int64 {
	return c.GetInt64(KeyAccountID)
}

func Claims(c *gin.Context) *token.Claims {
	v, _ := c.Get(KeyClaims)
	claims, _ := v.(*token.Claims)
	return claims
}
