package roleerrors

import (
	"go-dinas/internal/shared/apperror"
	"go-dinas/internal/store"
)

var (
	ErrUnknownResource = apperror.Wrapf(store.ErrValidation, "Permission set contains unknown resources")
)
