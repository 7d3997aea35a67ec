package roomtypeerrors

import (
	"go-dinas/internal/shared/apperror"
	"go-dinas/internal/store"
)

var (
	ErrInvalidCode     = apperror.Wrapf(store.ErrValidation, "Code must be 1-10 letters or digits")
	ErrNegativePrice   = apperror.Wrapf(store.ErrValidation, "Price cannot be negative")
	ErrInvalidCapacity = apperror.Wrapf(store.ErrValidation, "Capacity must be greater than zero")
	ErrHotelRequired   = apperror.Wrapf(store.ErrValidation, "At least one hotel is required")
)
