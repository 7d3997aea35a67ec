package plafonderrors

import (
	"go-dinas/internal/shared/apperror"
	"go-dinas/internal/store"
)

var (
	ErrInvalidType          = apperror.Wrapf(store.ErrValidation, "Type must be hotel or ticket")
	ErrNegativeAmount       = apperror.Wrapf(store.ErrValidation, "Amount cannot be negative")
	ErrInvalidEffectiveDate = apperror.Wrapf(store.ErrValidation, "effectiveDate must use YYYY-MM-DD")
	ErrAmountDateTogether   = apperror.Wrapf(store.ErrValidation, "amount and effectiveDate must be changed together")
)
