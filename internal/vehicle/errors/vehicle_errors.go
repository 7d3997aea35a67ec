package vehicleerrors

import (
	"go-dinas/internal/shared/apperror"
	"go-dinas/internal/store"
)

var (
	ErrInvalidPlateNumber = apperror.Wrapf(store.ErrValidation, "Plate number is required")
)
