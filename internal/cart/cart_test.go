package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locaneon_back_end/internal/models"
)

func item(id string, price float64, qty int) models.CartItem {
	return models.CartItem{ProductID: id, Name: "Produto " + id, Price: price, Quantity: qty}
}

func TestDerivedTotals(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryManager()
	const sid = "sessao-1"

	require.NoError(t, m.Add(ctx, sid, item("a", 500, 2)))
	require.NoError(t, m.Add(ctx, sid, item("b", 180, 1)))
	require.NoError(t, m.Add(ctx, sid, item("a", 500, 3))) // soma na entrada existente

	items, err := m.Get(ctx, sid)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, 6, Count(items))
	assert.InDelta(t, 500*5+180*1, Total(items), 0.001)

	require.NoError(t, m.UpdateQuantity(ctx, sid, "a", 1))
	require.NoError(t, m.Remove(ctx, sid, "b"))

	items, err = m.Get(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, 1, Count(items))
	assert.InDelta(t, 500, Total(items), 0.001)
}

func TestUpdateQuantityRemovesOnZeroOrNegative(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
	}{
		{"zero remove o item", 0},
		{"negativo remove o item", -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			m := NewMemoryManager()
			const sid = "sessao-2"

			require.NoError(t, m.Add(ctx, sid, item("a", 100, 2)))
			require.NoError(t, m.UpdateQuantity(ctx, sid, "a", tt.quantity))

			items, err := m.Get(ctx, sid)
			require.NoError(t, err)
			assert.Empty(t, items)
			assert.Equal(t, 0, Count(items))
			assert.Zero(t, Total(items))
		})
	}
}

func TestRemoveMissingIsNoop(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryManager()
	const sid = "sessao-3"

	require.NoError(t, m.Add(ctx, sid, item("a", 100, 1)))
	require.NoError(t, m.Remove(ctx, sid, "inexistente"))

	items, err := m.Get(ctx, sid)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryManager()
	const sid = "sessao-4"

	require.NoError(t, m.Add(ctx, sid, item("a", 100, 1)))
	require.NoError(t, m.Add(ctx, sid, item("b", 200, 2)))
	require.NoError(t, m.Clear(ctx, sid))

	items, err := m.Get(ctx, sid)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryManager()

	require.NoError(t, m.Add(ctx, "s1", item("a", 100, 1)))
	require.NoError(t, m.Add(ctx, "s2", item("b", 200, 2)))

	s1, err := m.Get(ctx, "s1")
	require.NoError(t, err)
	s2, err := m.Get(ctx, "s2")
	require.NoError(t, err)

	require.Len(t, s1, 1)
	require.Len(t, s2, 1)
	assert.Equal(t, "a", s1[0].ProductID)
	assert.Equal(t, "b", s2[0].ProductID)
}

func TestGetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryManager()
	const sid = "sessao-5"

	require.NoError(t, m.Add(ctx, sid, item("a", 100, 1)))

	items, err := m.Get(ctx, sid)
	require.NoError(t, err)
	items[0].Quantity = 99

	fresh, err := m.Get(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, 1, fresh[0].Quantity)
}
