package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"locaneon_back_end/internal/cache"
	"locaneon_back_end/internal/models"
	"locaneon_back_end/internal/services"
	"locaneon_back_end/internal/store"
)

// ProductHandler é o CRUD de catálogo do painel de admin.
type ProductHandler struct {
	Catalog store.Catalog
}

type productInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Stock       int      `json:"stock"`
	ImageURLs   []string `json:"imageUrls"`
	Category    string   `json:"category"`
}

func (in productInput) validate() string {
	if in.Name == "" {
		return "O campo 'name' é obrigatório"
	}
	if in.Price < 0 {
		return "Preço não pode ser negativo"
	}
	if in.Stock < 0 {
		return "Estoque não pode ser negativo"
	}
	return ""
}

// POST /api/admin/products
func (h *ProductHandler) Create(c *gin.Context) {
	var in productInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := in.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	ctx := c.Request.Context()
	created, err := h.Catalog.Create(ctx, models.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		ImageURLs:   in.ImageURLs,
		Category:    in.Category,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao criar produto: " + err.Error()})
		return
	}

	cache.InvalidateProducts(ctx)
	go services.IndexProduct(created)

	c.JSON(http.StatusOK, created)
}

// PUT /api/admin/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	var in productInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := in.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	ctx := c.Request.Context()
	updated, err := h.Catalog.Update(ctx, models.Product{
		ID:          c.Param("id"),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		ImageURLs:   in.ImageURLs,
		Category:    in.Category,
	})
	if errors.Is(err, store.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produto não encontrado"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao atualizar produto: " + err.Error()})
		return
	}

	cache.InvalidateProducts(ctx)
	go services.IndexProduct(updated)

	c.JSON(http.StatusOK, updated)
}

// DELETE /api/admin/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	deleted, err := h.Catalog.Delete(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao excluir produto: " + err.Error()})
		return
	}

	if deleted {
		cache.InvalidateProducts(ctx)
		go services.RemoveProduct(id)
	}

	// id inexistente não é erro: success=false e a coleção fica como estava
	c.JSON(http.StatusOK, gin.H{"success": deleted})
}
