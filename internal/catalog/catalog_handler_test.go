package catalog_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-dinas/internal/catalog"
	"go-dinas/internal/shared/apperror"
	"go-dinas/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogHandler_Routes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	db := store.New()
	svc := catalog.NewService(catalog.Supplier, catalog.NewRepository(db, catalog.Supplier))
	h := catalog.NewHandler(svc)

	r := gin.New()
	r.POST("/suppliers", h.Create)
	r.GET("/suppliers/:id", h.GetById)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/suppliers", strings.NewReader(`{"code":"sup1","name":"PT Sinar"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"SUP1"`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/suppliers/99", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "supplier 99 not found")
}
