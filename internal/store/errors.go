package store

import (
	"errors"
	"net/http"

	"go-dinas/internal/shared/apperror"
)

var (
	ErrNotFound = apperror.New(
		apperror.CodeNotFound,
		"Record not found",
		http.StatusNotFound,
	)
	ErrConflict = apperror.New(
		apperror.CodeConflict,
		"Record conflicts with existing data",
		http.StatusConflict,
	)
	ErrValidation = apperror.New(
		apperror.CodeInvalidInput,
		"Validation failed",
		http.StatusBadRequest,
	)
)

func notFound(collection string, id int64) error {
	return apperror.Wrapf(ErrNotFound, "%s %d not found", collection, id)
}

func Conflictf(format string, args ...any) error {
	return apperror.Wrapf(ErrConflict, format, args...)
}

func Validationf(format string, args ...any) error {
	return apperror.Wrapf(ErrValidation, format, args...)
}

// asValidation keeps domain errors that already carry a kind and turns anything else
// into a validation failure with the same message.
func asValidation(err error) error {
	if errors.Is(err, ErrValidation) || errors.Is(err, ErrConflict) || errors.Is(err, ErrNotFound) {
		return err
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return Validationf("%s", err.Error())
}
