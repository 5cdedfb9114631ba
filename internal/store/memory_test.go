package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locaneon_back_end/internal/models"
)

func TestMemoryCatalogCRUD(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCatalog(SeedProducts())

	products, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 6)

	created, err := c.Create(ctx, models.Product{Name: "Tripé de Alumínio", Price: 50, Stock: 10, Category: "Acessórios"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	// produto novo aparece primeiro, como o unshift do mock original
	products, err = c.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 7)
	assert.Equal(t, created.ID, products[0].ID)

	created.Price = 75
	updated, err := c.Update(ctx, created)
	require.NoError(t, err)
	assert.InDelta(t, 75, updated.Price, 0.001)

	got, err := c.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.InDelta(t, 75, got.Price, 0.001)

	deleted, err := c.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = c.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestMemoryCatalogUpdateMissing(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCatalog(nil)

	_, err := c.Update(ctx, models.Product{ID: "fantasma", Name: "X"})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestMemoryCatalogDeleteMissing(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCatalog(SeedProducts())

	deleted, err := c.Delete(ctx, "fantasma")
	require.NoError(t, err)
	assert.False(t, deleted)

	// coleção intacta
	products, err := c.List(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 6)
}

func TestMemoryCatalogAdjustStock(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCatalog(SeedProducts())

	require.NoError(t, c.AdjustStock(ctx, "1", -2))
	p, err := c.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 13, p.Stock)

	// item sem produto correspondente é ignorado, como no mock original
	require.NoError(t, c.AdjustStock(ctx, "fantasma", -1))
}

func TestMemoryCatalogListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCatalog(SeedProducts())

	products, err := c.List(ctx)
	require.NoError(t, err)
	products[0].Price = 9999
	products[0].ImageURLs[0] = "adulterada"

	fresh, err := c.Get(ctx, products[0].ID)
	require.NoError(t, err)
	assert.NotEqual(t, 9999.0, fresh.Price)
	assert.NotEqual(t, "adulterada", fresh.ImageURLs[0])
}

func TestSameMillisecondIDsAreDistinct(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCatalog(nil)

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		created, err := c.Create(ctx, models.Product{Name: "Produto", Price: 1, Stock: 1})
		require.NoError(t, err)
		require.False(t, seen[created.ID], "id repetido: %s", created.ID)
		seen[created.ID] = true
	}

	products, err := c.List(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 200)
}

func TestMemoryOrdersNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryOrders()

	first, err := s.Create(ctx, models.Order{CustomerName: "Ana", Total: 100})
	require.NoError(t, err)
	second, err := s.Create(ctx, models.Order{CustomerName: "Bruno", Total: 200})
	require.NoError(t, err)
	third, err := s.Create(ctx, models.Order{CustomerName: "Carla", Total: 300})
	require.NoError(t, err)

	orders, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, third.ID, orders[0].ID)
	assert.Equal(t, second.ID, orders[1].ID)
	assert.Equal(t, first.ID, orders[2].ID)
}

func TestMemoryOrdersStatus(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryOrders()

	created, err := s.Create(ctx, models.Order{CustomerName: "Ana", Total: 100, Status: "qualquer-coisa"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, created.Status, "pedido sempre nasce pendente")

	require.NoError(t, s.UpdateStatus(ctx, created.ID, models.StatusPaid))
	got, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPaid, got.Status)

	err = s.UpdateStatus(ctx, "fantasma", models.StatusPaid)
	assert.ErrorIs(t, err, ErrOrderNotFound)

	_, err = s.Get(ctx, "fantasma")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestMemoryOrdersSnapshotIsolation(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryOrders()

	items := []models.CartItem{{ProductID: "1", Name: "Drone", Price: 500, Quantity: 2}}
	created, err := s.Create(ctx, models.Order{CustomerName: "Ana", Items: items, Total: 1000})
	require.NoError(t, err)

	// mutar a fatia do chamador não pode afetar o pedido armazenado
	items[0].Price = 1

	got, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.InDelta(t, 500, got.Items[0].Price, 0.001)
}
