package apperror

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	entityCodePattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	initOnce          sync.Once
)

// Init mendaftarkan nama field dari tag json dan tag kustom ke validator bawaan Gin.
func Init() {
	initOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("entitycode", validateEntityCode)
	})
}

// entitycode: alphanumeric only. Length is bounded by a separate max tag.
func validateEntityCode(fl validator.FieldLevel) bool {
	return IsEntityCode(fl.Field().String())
}

func IsEntityCode(s string) bool {
	return entityCodePattern.MatchString(strings.TrimSpace(s))
}

// NormalizeEntityCode trims and upper-cases code; ok is false when the result is
// empty, longer than maxLen or not alphanumeric.
func NormalizeEntityCode(code string, maxLen int) (string, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) == 0 || len(code) > maxLen || !IsEntityCode(code) {
		return "", false
	}
	return code, true
}
