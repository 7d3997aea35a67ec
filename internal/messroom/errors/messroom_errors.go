package messroomerrors

import (
	"go-dinas/internal/shared/apperror"
	"go-dinas/internal/store"
)

var (
	ErrRoomNumberRequired = apperror.Wrapf(store.ErrValidation, "Room number is required")
	ErrInvalidGender      = apperror.Wrapf(store.ErrValidation, "Gender must be male or female")
	ErrInvalidCapacity    = apperror.Wrapf(store.ErrValidation, "Capacity must be greater than zero")
)
