package employeeerrors

import (
	"go-dinas/internal/shared/apperror"
	"go-dinas/internal/store"
)

var (
	ErrWhatsappRequired = apperror.Wrapf(store.ErrValidation, "WhatsApp number is required for drivers")
	ErrInvalidEmail     = apperror.Wrapf(store.ErrValidation, "Invalid email format")
	ErrInvalidGender    = apperror.Wrapf(store.ErrValidation, "Gender must be male or female")
	ErrMissingName      = apperror.Wrapf(store.ErrValidation, "Name is required")
	ErrMissingBranch    = apperror.Wrapf(store.ErrValidation, "branchId is required")
	ErrMissingRole      = apperror.Wrapf(store.ErrValidation, "roleId is required")
)
