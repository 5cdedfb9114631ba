package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"locaneon_back_end/internal/cache"
	"locaneon_back_end/internal/models"
	"locaneon_back_end/internal/services"
	"locaneon_back_end/internal/store"
)

// ProductHandler expõe o catálogo para a loja (leitura e busca).
type ProductHandler struct {
	Catalog store.Catalog
}

// GET /api/products
func (h *ProductHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if cached, ok := cache.GetProducts(ctx); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	products, err := h.Catalog.List(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao listar produtos"})
		return
	}

	cache.SetProducts(ctx, products)
	c.JSON(http.StatusOK, products)
}

// GET /api/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	p, err := h.Catalog.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produto não encontrado"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar produto"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// GET /api/products/search?q=
func (h *ProductHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parâmetro 'q' ausente"})
		return
	}

	ctx := c.Request.Context()

	// Elasticsearch primeiro; sem cliente ou sem resultado, cai no filtro em
	// memória sobre o catálogo inteiro.
	if results, err := services.SearchProducts(ctx, query); err == nil && len(results) > 0 {
		c.JSON(http.StatusOK, results)
		return
	}

	products, err := h.Catalog.List(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro na busca"})
		return
	}

	matches := []models.Product{}
	for _, p := range products {
		if containsIgnoreCase(p.Name, query) || containsIgnoreCase(p.Description, query) || containsIgnoreCase(p.Category, query) {
			matches = append(matches, p)
		}
	}
	c.JSON(http.StatusOK, matches)
}

func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
