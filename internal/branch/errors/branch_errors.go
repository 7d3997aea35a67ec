package brancherrors

import (
	"go-dinas/internal/shared/apperror"
	"go-dinas/internal/store"
)

var (
	ErrInvalidBranchCode = apperror.Wrapf(store.ErrValidation, "Branch code must be 1-5 letters or digits")
)
