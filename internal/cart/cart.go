package cart

import (
	"context"

	"locaneon_back_end/internal/models"
)

// Manager mantém o carrinho de cada sessão. O carrinho nunca revalida estoque
// depois do add inicial; quem chama é responsável por limitar a quantidade ao
// estoque disponível naquele momento.
type Manager interface {
	Get(ctx context.Context, sessionID string) ([]models.CartItem, error)
	// Add soma a quantidade quando o produto já está no carrinho.
	Add(ctx context.Context, sessionID string, item models.CartItem) error
	// UpdateQuantity com quantidade <= 0 remove o item (não é erro).
	UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) error
	Remove(ctx context.Context, sessionID, productID string) error
	Clear(ctx context.Context, sessionID string) error
}

// Count soma as quantidades de todos os itens.
func Count(items []models.CartItem) int {
	total := 0
	for _, it := range items {
		total += it.Quantity
	}
	return total
}

// Total soma preço × quantidade de todos os itens. Recalculado a cada leitura,
// nunca armazenado.
func Total(items []models.CartItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// aplica a semântica compartilhada de add/update/remove sobre a fatia de itens

func addItem(items []models.CartItem, item models.CartItem) []models.CartItem {
	for i := range items {
		if items[i].ProductID == item.ProductID {
			items[i].Quantity += item.Quantity
			return items
		}
	}
	return append(items, item)
}

func setQuantity(items []models.CartItem, productID string, quantity int) []models.CartItem {
	if quantity <= 0 {
		return removeItem(items, productID)
	}
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = quantity
			break
		}
	}
	return items
}

func removeItem(items []models.CartItem, productID string) []models.CartItem {
	out := items[:0]
	for _, it := range items {
		if it.ProductID != productID {
			out = append(out, it)
		}
	}
	return out
}
