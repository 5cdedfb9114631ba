package cart

import (
	"context"
	"sync"

	"locaneon_back_end/internal/models"
)

// MemoryManager guarda os carrinhos no processo. Sem durabilidade: reiniciar o
// servidor descarta tudo, como o carrinho de aba do storefront original.
type MemoryManager struct {
	mu    sync.RWMutex
	carts map[string][]models.CartItem
}

func NewMemoryManager() *MemoryManager {
	return &MemoryManager{carts: make(map[string][]models.CartItem)}
}

func (m *MemoryManager) Get(ctx context.Context, sessionID string) ([]models.CartItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := m.carts[sessionID]
	out := make([]models.CartItem, len(items))
	copy(out, items)
	return out, nil
}

func (m *MemoryManager) Add(ctx context.Context, sessionID string, item models.CartItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.carts[sessionID] = addItem(m.carts[sessionID], item)
	return nil
}

func (m *MemoryManager) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.carts[sessionID] = setQuantity(m.carts[sessionID], productID, quantity)
	return nil
}

func (m *MemoryManager) Remove(ctx context.Context, sessionID, productID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.carts[sessionID] = removeItem(m.carts[sessionID], productID)
	return nil
}

func (m *MemoryManager) Clear(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.carts, sessionID)
	return nil
}
