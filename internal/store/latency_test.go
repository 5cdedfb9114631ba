package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locaneon_back_end/internal/models"
)

func TestLatencyDecoratorPreservesResults(t *testing.T) {
	ctx := context.Background()
	delay := 30 * time.Millisecond
	catalog := WithCatalogLatency(NewMemoryCatalog(SeedProducts()), delay)

	start := time.Now()
	products, err := catalog.List(ctx)
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Len(t, products, 6)
	assert.GreaterOrEqual(t, elapsed, delay, "a latência fixa deve ser aplicada")
}

func TestLatencyDecoratorHonorsCancellation(t *testing.T) {
	catalog := WithCatalogLatency(NewMemoryCatalog(SeedProducts()), time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := catalog.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLatencyDecoratorOrders(t *testing.T) {
	ctx := context.Background()
	delay := 20 * time.Millisecond
	orders := WithOrdersLatency(NewMemoryOrders(), delay)

	start := time.Now()
	created, err := orders.Create(ctx, models.Order{CustomerName: "Ana", Total: 10})
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, created.Status)
	assert.GreaterOrEqual(t, elapsed, delay)
}
