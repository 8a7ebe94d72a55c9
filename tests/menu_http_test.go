package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JordiGD/Parcial2-Soft1/internal/handler"
	"github.com/JordiGD/Parcial2-Soft1/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Minimal engine with only the routes under test, backed by the stub repo.
func newMenuEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewMenuHandler(service.NewBebidaService(newStubBebidaRepo()))
	r := gin.New()
	menu := r.Group("/menu")
	menu.POST("", h.Crear)
	menu.DELETE("/:id", h.Eliminar)
	return r
}

func TestCrearBebidaHTTPCamposConNombreJSON(t *testing.T) {
	r := newMenuEngine()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/menu", strings.NewReader(`{"name":"Latte","size":"medium"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	// Field errors are keyed by the JSON names clients sent, not the Go
	// struct field names.
	var body struct {
		Detail string            `json:"detail"`
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Fields, "price")
	assert.NotContains(t, body.Fields, "Price")
}

func TestEliminarBebidaHTTPIDNoNumerico(t *testing.T) {
	r := newMenuEngine()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/menu/abc", nil)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
