package handler

import (
	"errors"
	"net/http"

	"github.com/JordiGD/Parcial2-Soft1/internal/dto"
	"github.com/JordiGD/Parcial2-Soft1/internal/service"

	"github.com/gin-gonic/gin"
)

type PedidosHandler struct{ svc service.PedidoService }

func NewPedidosHandler(svc service.PedidoService) *PedidosHandler {
	return &PedidosHandler{svc: svc}
}

// Crear POST /orders
// Rejections (missing drink, wrong size, bad quantities) come back as
// 400 {message}, the shape the order UIs already parse.
func (h *PedidosHandler) Crear(c *gin.Context) {
	var req dto.CrearPedidoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "JSON inválido: " + err.Error()})
		return
	}

	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"message": ve.Detail})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al procesar la orden"})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar GET /orders
func (h *PedidosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al listar órdenes"})
		return
	}
	c.JSON(http.StatusOK, resp)
}
