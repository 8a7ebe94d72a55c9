package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/JordiGD/Parcial2-Soft1/internal/apierror"
	"github.com/JordiGD/Parcial2-Soft1/internal/dto"
	"github.com/JordiGD/Parcial2-Soft1/internal/service"

	"github.com/gin-gonic/gin"
)

const apiVersion = "2.0.0"

type MenuHandler struct{ svc service.BebidaService }

func NewMenuHandler(svc service.BebidaService) *MenuHandler {
	return &MenuHandler{svc: svc}
}

// Root GET /
func (h *MenuHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, dto.RootResponse{
		Message:  "API de Bebidas - VirtualCoffee",
		Version:  apiVersion,
		Status:   "active",
		Database: "PostgreSQL",
	})
}

// Listar GET /menu
func (h *MenuHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Error al obtener el menú"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerPorNombre GET /menu/:name — substring lookup, first match only.
func (h *MenuHandler) ObtenerPorNombre(c *gin.Context) {
	resp, err := h.svc.BuscarPorNombre(c.Request.Context(), c.Param("name"))
	if err != nil {
		var nf *service.NotFoundError
		if errors.As(err, &nf) {
			c.JSON(http.StatusNotFound, apierror.New(nf.Detail))
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Error al buscar bebida"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Crear POST /menu
func (h *MenuHandler) Crear(c *gin.Context) {
	var req dto.CrearBebidaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		var ve *service.ValidationError
		var ce *service.ConflictError
		switch {
		case errors.As(err, &ve):
			c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(map[string]string{ve.Field: ve.Detail}))
		case errors.As(err, &ce):
			c.JSON(http.StatusBadRequest, apierror.New(ce.Error()))
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, apierror.New("Error al crear bebida"))
		}
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Eliminar DELETE /menu/:id
func (h *MenuHandler) Eliminar(c *gin.Context) {
	// A non-numeric id is a schema problem, same 422 as any other bad input.
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.EliminarPorID(c.Request.Context(), id); err != nil {
		var nf *service.NotFoundError
		if errors.As(err, &nf) {
			c.JSON(http.StatusNotFound, apierror.New(nf.Detail))
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Error al eliminar bebida"))
		return
	}
	c.Status(http.StatusNoContent)
}

// Seed POST /menu/seed — best effort, per-item failures are swallowed.
func (h *MenuHandler) Seed(c *gin.Context) {
	resp, err := h.svc.SeedMenu(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Error al inicializar el menú"))
		return
	}
	c.JSON(http.StatusCreated, resp)
}
