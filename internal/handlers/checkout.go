package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"locaneon_back_end/internal/checkout"
	"locaneon_back_end/internal/middleware"
)

// CheckoutHandler expõe o fluxo de dois passos do checkout.
type CheckoutHandler struct {
	Pipeline *checkout.Pipeline
}

// POST /api/checkout — passo 1: dados de entrega e método de pagamento.
func (h *CheckoutHandler) Start(c *gin.Context) {
	var d checkout.Details
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	ins, err := h.Pipeline.Start(c.Request.Context(), middleware.CartID(c), d)
	switch {
	case errors.Is(err, checkout.ErrCartEmpty):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Seu carrinho está vazio."})
	case errors.Is(err, checkout.ErrMissingFields):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Preencha todos os campos obrigatórios."})
	case errors.Is(err, checkout.ErrInvalidMethod):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Método de pagamento inválido."})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ocorreu um erro ao processar seu pedido. Tente novamente."})
	default:
		c.JSON(http.StatusOK, gin.H{"step": checkout.StepPayment, "instructions": ins})
	}
}

// GET /api/checkout/payment — reapresenta as instruções do passo 2.
func (h *CheckoutHandler) Payment(c *gin.Context) {
	ins, err := h.Pipeline.Payment(c.Request.Context(), middleware.CartID(c))
	if errors.Is(err, checkout.ErrNoCheckout) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Nenhum checkout em andamento."})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ocorreu um erro ao processar seu pedido. Tente novamente."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"step": checkout.StepPayment, "instructions": ins})
}

// POST /api/checkout/back — volta ao passo de dados.
func (h *CheckoutHandler) Back(c *gin.Context) {
	if err := h.Pipeline.Back(middleware.CartID(c)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Nenhum checkout em andamento."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"step": checkout.StepDetails})
}

// POST /api/checkout/confirm — submete o pedido e confirma o pagamento.
func (h *CheckoutHandler) Confirm(c *gin.Context) {
	conf, err := h.Pipeline.Confirm(c.Request.Context(), middleware.CartID(c))
	switch {
	case errors.Is(err, checkout.ErrNoCheckout):
		c.JSON(http.StatusNotFound, gin.H{"error": "Nenhum checkout em andamento."})
	case errors.Is(err, checkout.ErrCartEmpty):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Seu carrinho está vazio."})
	case errors.Is(err, checkout.ErrPixNotConfigured):
		c.JSON(http.StatusBadRequest, gin.H{"error": "O administrador ainda não configurou uma chave PIX. Por favor, entre em contato."})
	case err != nil:
		// a causa real já foi logada pelo pipeline; o cliente recebe a
		// mensagem genérica e pode tentar de novo
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ocorreu um erro ao processar seu pedido. Tente novamente."})
	default:
		c.JSON(http.StatusOK, conf)
	}
}
