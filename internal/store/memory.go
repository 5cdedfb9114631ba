package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"locaneon_back_end/internal/models"
)

// MemoryCatalog guarda os produtos em memória. O mock original rodava num
// único thread; aqui o gin atende requisições concorrentes, então um mutex
// protege a coleção. Toda leitura devolve cópias defensivas.
type MemoryCatalog struct {
	mu       sync.RWMutex
	products map[string]models.Product
	order    []string // preserva a ordem de inserção (mais novos primeiro)
	ids      idSource
}

func NewMemoryCatalog(seed []models.Product) *MemoryCatalog {
	c := &MemoryCatalog{products: make(map[string]models.Product)}
	for _, p := range seed {
		c.products[p.ID] = p
		c.order = append(c.order, p.ID)
	}
	return c
}

func (c *MemoryCatalog) List(ctx context.Context) ([]models.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Product, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, copyProduct(c.products[id]))
	}
	return out, nil
}

func (c *MemoryCatalog) Get(ctx context.Context, id string) (models.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.products[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return copyProduct(p), nil
}

func (c *MemoryCatalog) Create(ctx context.Context, p models.Product) (models.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	p.ID = c.ids.next()
	p.CreatedAt = now
	p.UpdatedAt = now

	c.products[p.ID] = copyProduct(p)
	c.order = append([]string{p.ID}, c.order...) // novos produtos aparecem primeiro
	return p, nil
}

func (c *MemoryCatalog) Update(ctx context.Context, p models.Product) (models.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	existing, ok := c.products[p.ID]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}

	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now()
	c.products[p.ID] = copyProduct(p)
	return p, nil
}

func (c *MemoryCatalog) Delete(ctx context.Context, id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.products[id]; !ok {
		return false, nil
	}

	delete(c.products, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true, nil
}

func (c *MemoryCatalog) AdjustStock(ctx context.Context, id string, delta int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.products[id]
	if !ok {
		// o mock original ignorava itens de pedido sem produto correspondente
		return nil
	}

	p.Stock += delta
	p.UpdatedAt = time.Now()
	c.products[id] = p
	return nil
}

func copyProduct(p models.Product) models.Product {
	urls := make([]string, len(p.ImageURLs))
	copy(urls, p.ImageURLs)
	p.ImageURLs = urls
	return p
}

// MemoryOrders guarda os pedidos em memória, mais recentes primeiro na listagem.
type MemoryOrders struct {
	mu     sync.RWMutex
	orders map[string]models.Order
	ids    idSource
}

func NewMemoryOrders() *MemoryOrders {
	return &MemoryOrders{orders: make(map[string]models.Order)}
}

func (s *MemoryOrders) Create(ctx context.Context, o models.Order) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o.ID = s.ids.next()
	o.Status = models.StatusPending
	o.CreatedAt = time.Now()
	s.orders[o.ID] = copyOrder(o)
	return o, nil
}

func (s *MemoryOrders) List(ctx context.Context) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, copyOrder(o))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryOrders) Get(ctx context.Context, id string) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return models.Order{}, ErrOrderNotFound
	}
	return copyOrder(o), nil
}

func (s *MemoryOrders) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return ErrOrderNotFound
	}
	o.Status = status
	s.orders[id] = o
	return nil
}

func copyOrder(o models.Order) models.Order {
	items := make([]models.CartItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}
