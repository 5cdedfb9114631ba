package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"locaneon_back_end/internal/store"
)

// OrderHandler é a visão somente-leitura dos pedidos no painel.
type OrderHandler struct {
	Orders store.Orders
}

// GET /api/admin/orders — mais recentes primeiro.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.Orders.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao listar pedidos"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
