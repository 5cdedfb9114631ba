package store

import (
	"context"
	"time"

	"locaneon_back_end/internal/models"
)

// Decoradores que reproduzem a latência fixa do mock original (delay constante,
// sem jitter nem retry). Úteis em desenvolvimento e nos testes; em produção o
// backend real já tem latência própria.

type latentCatalog struct {
	inner Catalog
	delay time.Duration
}

type latentOrders struct {
	inner Orders
	delay time.Duration
}

func WithCatalogLatency(c Catalog, d time.Duration) Catalog {
	return &latentCatalog{inner: c, delay: d}
}

func WithOrdersLatency(o Orders, d time.Duration) Orders {
	return &latentOrders{inner: o, delay: d}
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *latentCatalog) List(ctx context.Context) ([]models.Product, error) {
	if err := sleep(ctx, l.delay); err != nil {
		return nil, err
	}
	return l.inner.List(ctx)
}

func (l *latentCatalog) Get(ctx context.Context, id string) (models.Product, error) {
	if err := sleep(ctx, l.delay); err != nil {
		return models.Product{}, err
	}
	return l.inner.Get(ctx, id)
}

func (l *latentCatalog) Create(ctx context.Context, p models.Product) (models.Product, error) {
	if err := sleep(ctx, l.delay); err != nil {
		return models.Product{}, err
	}
	return l.inner.Create(ctx, p)
}

func (l *latentCatalog) Update(ctx context.Context, p models.Product) (models.Product, error) {
	if err := sleep(ctx, l.delay); err != nil {
		return models.Product{}, err
	}
	return l.inner.Update(ctx, p)
}

func (l *latentCatalog) Delete(ctx context.Context, id string) (bool, error) {
	if err := sleep(ctx, l.delay); err != nil {
		return false, err
	}
	return l.inner.Delete(ctx, id)
}

func (l *latentCatalog) AdjustStock(ctx context.Context, id string, delta int) error {
	if err := sleep(ctx, l.delay); err != nil {
		return err
	}
	return l.inner.AdjustStock(ctx, id, delta)
}

func (l *latentOrders) Create(ctx context.Context, o models.Order) (models.Order, error) {
	if err := sleep(ctx, l.delay); err != nil {
		return models.Order{}, err
	}
	return l.inner.Create(ctx, o)
}

func (l *latentOrders) List(ctx context.Context) ([]models.Order, error) {
	if err := sleep(ctx, l.delay); err != nil {
		return nil, err
	}
	return l.inner.List(ctx)
}

func (l *latentOrders) Get(ctx context.Context, id string) (models.Order, error) {
	if err := sleep(ctx, l.delay); err != nil {
		return models.Order{}, err
	}
	return l.inner.Get(ctx, id)
}

func (l *latentOrders) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error {
	if err := sleep(ctx, l.delay); err != nil {
		return err
	}
	return l.inner.UpdateStatus(ctx, id, status)
}
