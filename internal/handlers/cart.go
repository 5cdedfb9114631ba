package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"locaneon_back_end/internal/cart"
	"locaneon_back_end/internal/middleware"
	"locaneon_back_end/internal/models"
	"locaneon_back_end/internal/store"
)

// CartHandler gerencia o carrinho da sessão atual.
type CartHandler struct {
	Carts   cart.Manager
	Catalog store.Catalog
}

func (h *CartHandler) respond(c *gin.Context, items []models.CartItem, message string) {
	body := gin.H{
		"items":     items,
		"cartCount": cart.Count(items),
		"cartTotal": cart.Total(items),
	}
	if message != "" {
		body["message"] = message
	}
	c.JSON(http.StatusOK, body)
}

// GET /api/cart
func (h *CartHandler) Get(c *gin.Context) {
	items, err := h.Carts.Get(c.Request.Context(), middleware.CartID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao ler o carrinho"})
		return
	}
	h.respond(c, items, "")
}

// POST /api/cart
func (h *CartHandler) Add(c *gin.Context) {
	var input struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}
	if input.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantidade inválida"})
		return
	}

	ctx := c.Request.Context()
	sessionID := middleware.CartID(c)

	p, err := h.Catalog.Get(ctx, input.ProductID)
	if errors.Is(err, store.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produto não encontrado"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar produto"})
		return
	}
	if p.Stock <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Produto sem estoque disponível"})
		return
	}

	// limita ao estoque atual, como a tela de produto fazia; depois do add o
	// carrinho não revalida estoque
	quantity := input.Quantity
	if quantity > p.Stock {
		quantity = p.Stock
	}

	imageURL := ""
	if len(p.ImageURLs) > 0 {
		imageURL = p.ImageURLs[0]
	}

	item := models.CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  quantity,
		ImageURL:  imageURL,
	}
	if err := h.Carts.Add(ctx, sessionID, item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao adicionar ao carrinho"})
		return
	}

	items, _ := h.Carts.Get(ctx, sessionID)
	h.respond(c, items, "Produto adicionado ao carrinho")
}

// PUT /api/cart/:productId
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	ctx := c.Request.Context()
	sessionID := middleware.CartID(c)

	// quantidade <= 0 remove o item, tratado como remoção e não como erro
	if err := h.Carts.UpdateQuantity(ctx, sessionID, c.Param("productId"), input.Quantity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao atualizar o carrinho"})
		return
	}

	items, _ := h.Carts.Get(ctx, sessionID)
	h.respond(c, items, "")
}

// DELETE /api/cart/:productId
func (h *CartHandler) Remove(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := middleware.CartID(c)

	if err := h.Carts.Remove(ctx, sessionID, c.Param("productId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao remover do carrinho"})
		return
	}

	items, _ := h.Carts.Get(ctx, sessionID)
	h.respond(c, items, "Produto removido do carrinho")
}

// DELETE /api/cart
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.Carts.Clear(c.Request.Context(), middleware.CartID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao esvaziar o carrinho"})
		return
	}
	h.respond(c, nil, "Carrinho esvaziado com sucesso")
}
