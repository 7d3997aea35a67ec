package autherrors

import (
	"net/http"

	"go-dinas/internal/shared/apperror"
	"go-dinas/internal/store"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid credentials",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Token expired",
		http.StatusUnauthorized,
	)
	ErrTokenRevoked = apperror.New(
		apperror.CodeUnauthorized,
		"Token has been revoked",
		http.StatusUnauthorized,
	)
	ErrTokenMissing = apperror.New(
		apperror.CodeUnauthorized,
		"Token not found",
		http.StatusUnauthorized,
	)
	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)
	ErrBranchNotAccessible = apperror.New(
		apperror.CodeForbidden,
		"Branch is not accessible for this account",
		http.StatusForbidden,
	)
	ErrAccountInactive = apperror.New(
		apperror.CodeForbidden,
		"Account is inactive",
		http.StatusForbidden,
	)

	ErrInvalidEmail    = apperror.Wrapf(store.ErrValidation, "Invalid email format")
	ErrMissingName     = apperror.Wrapf(store.ErrValidation, "Name is required")
	ErrMissingRole     = apperror.Wrapf(store.ErrValidation, "roleId is required")
	ErrMissingBranches = apperror.Wrapf(store.ErrValidation, "At least one branch is required")
	ErrWeakPassword    = apperror.Wrapf(store.ErrValidation, "Password must be at least 6 characters")
)
