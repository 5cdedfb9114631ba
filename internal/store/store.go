package store

import (
	"context"
	"errors"

	"locaneon_back_end/internal/models"
)

var (
	ErrProductNotFound = errors.New("produto não encontrado")
	ErrOrderNotFound   = errors.New("pedido não encontrado")
)

// Catalog é o repositório de produtos. A implementação padrão vive em memória;
// uma real (ScyllaDB) pode ser trocada sem mudar nenhum chamador.
type Catalog interface {
	List(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id string) (models.Product, error)
	Create(ctx context.Context, p models.Product) (models.Product, error)
	Update(ctx context.Context, p models.Product) (models.Product, error)
	Delete(ctx context.Context, id string) (bool, error)
	AdjustStock(ctx context.Context, id string, delta int) error
}

// Orders é o repositório de pedidos. List devolve sempre do mais recente para
// o mais antigo.
type Orders interface {
	Create(ctx context.Context, o models.Order) (models.Order, error)
	List(ctx context.Context) ([]models.Order, error)
	Get(ctx context.Context, id string) (models.Order, error)
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error
}
