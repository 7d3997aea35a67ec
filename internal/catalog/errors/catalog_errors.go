package catalogerrors

import (
	"go-dinas/internal/shared/apperror"
	"go-dinas/internal/store"
)

var (
	ErrInvalidCode = apperror.Wrapf(store.ErrValidation, "Code must be 1-10 letters or digits")
)
