package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// driver_id -> Driver Id
func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	return cases.Title(language.English).String(s)
}

// MapValidationError mengubah error validator menjadi *AppError untuk field pertama yang gagal.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		e := errs[0]
		field := formatFieldName(e.Field())

		switch e.Tag() {
		case "required", "required_if":
			return RequiredField(field)
		case "oneof":
			return Wrap(ErrInvalidInput, CodeInvalidInput,
				fmt.Sprintf("%s must be one of: %s", field, e.Param()), http.StatusBadRequest)
		case "email":
			return Wrap(ErrInvalidInput, CodeInvalidInput,
				fmt.Sprintf("%s must be a valid email address", field), http.StatusBadRequest)
		default:
			return InvalidField(field)
		}
	}

	return New(
		CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	)
}
