package request

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"go-dinas/internal/shared/apperror"
	"go-dinas/internal/store"

	"github.com/gin-gonic/gin"
)

// FilterKeys lists the query parameters a list endpoint understands besides
// isActive and search.
type FilterKeys struct {
	Refs  []string
	Attrs []string
}

// ParseFilter membaca query string menjadi store.Filter.
// Parameter kosong diabaikan; nilai yang tidak valid menghasilkan error 400.
func ParseFilter(c *gin.Context, keys FilterKeys) (store.Filter, error) {
	var f store.Filter

	if raw := strings.TrimSpace(c.Query("isActive")); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return f, invalidQuery("isActive")
		}
		f.IsActive = &v
	}
	f.Search = strings.TrimSpace(c.Query("search"))

	for _, key := range keys.Refs {
		raw := strings.TrimSpace(c.Query(key))
		if raw == "" {
			continue
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id < 1 {
			return f, invalidQuery(key)
		}
		f = f.WithRef(key, id)
	}
	for _, key := range keys.Attrs {
		if raw := strings.TrimSpace(c.Query(key)); raw != "" {
			f = f.WithAttr(key, raw)
		}
	}
	return f, nil
}

// ParseID membaca path param :id sebagai bilangan positif.
func ParseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, apperror.Wrap(apperror.ErrInvalidInput, apperror.CodeInvalidInput, "id must be a positive integer", http.StatusBadRequest)
	}
	return id, nil
}

func invalidQuery(key string) error {
	return apperror.Wrap(apperror.ErrInvalidInput, apperror.CodeInvalidInput,
		fmt.Sprintf("query parameter %s is invalid", key), http.StatusBadRequest)
}
