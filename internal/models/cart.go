package models

// CartItem guarda uma cópia por valor do produto no momento do "adicionar ao
// carrinho". Mudanças posteriores de preço no catálogo não afetam o item.
type CartItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	ImageURL  string  `json:"imageUrl"`
}
