package cache

import (
	"context"
	"encoding/json"
	"time"

	"locaneon_back_end/internal/database"
	"locaneon_back_end/internal/models"
)

const (
	productsKey     = "products:all"
	ProductCacheTTL = 10 * time.Minute
)

// GetProducts devolve a listagem cacheada, ou false quando não há cache
// (Redis ausente, chave expirada ou JSON corrompido).
func GetProducts(ctx context.Context) ([]models.Product, bool) {
	if database.Redis == nil {
		return nil, false
	}

	data, err := database.Redis.Get(ctx, productsKey).Result()
	if err != nil || data == "" {
		return nil, false
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(data), &products); err != nil {
		return nil, false
	}
	return products, true
}

// SetProducts grava a listagem no cache. Falhas são silenciosas: cache é
// otimização, não fonte de verdade.
func SetProducts(ctx context.Context, products []models.Product) {
	if database.Redis == nil {
		return
	}
	if data, err := json.Marshal(products); err == nil {
		database.Redis.Set(ctx, productsKey, data, ProductCacheTTL)
	}
}

// InvalidateProducts derruba o cache depois de qualquer escrita no catálogo.
func InvalidateProducts(ctx context.Context) {
	if database.Redis == nil {
		return
	}
	database.Redis.Del(ctx, productsKey)
}
