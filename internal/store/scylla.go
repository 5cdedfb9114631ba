package store

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/gocql/gocql"

	"locaneon_back_end/internal/models"
)

// ScyllaCatalog implementa Catalog sobre ScyllaDB.
//
// Esquema esperado:
//
//	CREATE TABLE products (
//	    product_id text PRIMARY KEY,
//	    name text, description text, price double, stock int,
//	    image_urls list<text>, category text,
//	    created_at timestamp, updated_at timestamp
//	);
type ScyllaCatalog struct {
	session *gocql.Session
	ids     idSource
}

func NewScyllaCatalog(session *gocql.Session) *ScyllaCatalog {
	return &ScyllaCatalog{session: session}
}

func (c *ScyllaCatalog) List(ctx context.Context) ([]models.Product, error) {
	iter := c.session.Query(`SELECT product_id, name, description, price, stock, image_urls, category, created_at, updated_at FROM products`).
		WithContext(ctx).Iter()

	var products []models.Product
	var p models.Product
	for iter.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.ImageURLs, &p.Category, &p.CreatedAt, &p.UpdatedAt) {
		products = append(products, p)
		p = models.Product{} // reset para a próxima iteração
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}

	// novos primeiro, como no backend em memória
	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	return products, nil
}

func (c *ScyllaCatalog) Get(ctx context.Context, id string) (models.Product, error) {
	var p models.Product
	err := c.session.Query(`SELECT product_id, name, description, price, stock, image_urls, category, created_at, updated_at FROM products WHERE product_id = ?`, id).
		WithContext(ctx).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.ImageURLs, &p.Category, &p.CreatedAt, &p.UpdatedAt)
	if err == gocql.ErrNotFound {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		return models.Product{}, err
	}
	return p, nil
}

func (c *ScyllaCatalog) Create(ctx context.Context, p models.Product) (models.Product, error) {
	now := time.Now()
	p.ID = c.ids.next()
	p.CreatedAt = now
	p.UpdatedAt = now

	err := c.session.Query(`INSERT INTO products (product_id, name, description, price, stock, image_urls, category, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Description, p.Price, p.Stock, p.ImageURLs, p.Category, p.CreatedAt, p.UpdatedAt).
		WithContext(ctx).Exec()
	if err != nil {
		return models.Product{}, err
	}
	return p, nil
}

func (c *ScyllaCatalog) Update(ctx context.Context, p models.Product) (models.Product, error) {
	existing, err := c.Get(ctx, p.ID)
	if err != nil {
		return models.Product{}, err
	}

	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now()
	err = c.session.Query(`UPDATE products SET name = ?, description = ?, price = ?, stock = ?, image_urls = ?, category = ?, updated_at = ? WHERE product_id = ?`,
		p.Name, p.Description, p.Price, p.Stock, p.ImageURLs, p.Category, p.UpdatedAt, p.ID).
		WithContext(ctx).Exec()
	if err != nil {
		return models.Product{}, err
	}
	return p, nil
}

func (c *ScyllaCatalog) Delete(ctx context.Context, id string) (bool, error) {
	if _, err := c.Get(ctx, id); err == ErrProductNotFound {
		return false, nil
	} else if err != nil {
		return false, err
	}

	err := c.session.Query(`DELETE FROM products WHERE product_id = ?`, id).WithContext(ctx).Exec()
	if err != nil {
		return false, err
	}
	return true, nil
}

func (c *ScyllaCatalog) AdjustStock(ctx context.Context, id string, delta int) error {
	// read-then-write, sem atomicidade — mesma janela de corrida do mock original
	p, err := c.Get(ctx, id)
	if err == ErrProductNotFound {
		return nil
	}
	if err != nil {
		return err
	}

	return c.session.Query(`UPDATE products SET stock = ?, updated_at = ? WHERE product_id = ?`,
		p.Stock+delta, time.Now(), id).WithContext(ctx).Exec()
}

// ScyllaOrders implementa Orders sobre ScyllaDB. Os itens do pedido são
// serializados como JSON numa coluna text, no estilo da tabela orders do Cedra.
//
//	CREATE TABLE orders (
//	    order_id text PRIMARY KEY,
//	    customer_name text, address text, whatsapp text,
//	    delivery_datetime text, payment_method text,
//	    items text, total double, status text, created_at timestamp
//	);
type ScyllaOrders struct {
	session *gocql.Session
	ids     idSource
}

func NewScyllaOrders(session *gocql.Session) *ScyllaOrders {
	return &ScyllaOrders{session: session}
}

func (s *ScyllaOrders) Create(ctx context.Context, o models.Order) (models.Order, error) {
	o.ID = s.ids.next()
	o.Status = models.StatusPending
	o.CreatedAt = time.Now()

	itemsJSON, err := json.Marshal(o.Items)
	if err != nil {
		return models.Order{}, err
	}

	err = s.session.Query(`INSERT INTO orders (order_id, customer_name, address, whatsapp, delivery_datetime, payment_method, items, total, status, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		o.ID, o.CustomerName, o.Address, o.Whatsapp, o.DeliveryDateTime, string(o.PaymentMethod), string(itemsJSON), o.Total, string(o.Status), o.CreatedAt).
		WithContext(ctx).Exec()
	if err != nil {
		return models.Order{}, err
	}
	return o, nil
}

func (s *ScyllaOrders) List(ctx context.Context) ([]models.Order, error) {
	iter := s.session.Query(`SELECT order_id, customer_name, address, whatsapp, delivery_datetime, payment_method, items, total, status, created_at FROM orders`).
		WithContext(ctx).Iter()

	var orders []models.Order
	var o models.Order
	var method, status, itemsJSON string
	for iter.Scan(&o.ID, &o.CustomerName, &o.Address, &o.Whatsapp, &o.DeliveryDateTime, &method, &itemsJSON, &o.Total, &status, &o.CreatedAt) {
		o.PaymentMethod = models.PaymentMethod(method)
		o.Status = models.OrderStatus(status)
		if err := json.Unmarshal([]byte(itemsJSON), &o.Items); err != nil {
			o.Items = nil
		}
		orders = append(orders, o)
		o = models.Order{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (s *ScyllaOrders) Get(ctx context.Context, id string) (models.Order, error) {
	var o models.Order
	var method, status, itemsJSON string
	err := s.session.Query(`SELECT order_id, customer_name, address, whatsapp, delivery_datetime, payment_method, items, total, status, created_at FROM orders WHERE order_id = ?`, id).
		WithContext(ctx).Scan(&o.ID, &o.CustomerName, &o.Address, &o.Whatsapp, &o.DeliveryDateTime, &method, &itemsJSON, &o.Total, &status, &o.CreatedAt)
	if err == gocql.ErrNotFound {
		return models.Order{}, ErrOrderNotFound
	}
	if err != nil {
		return models.Order{}, err
	}

	o.PaymentMethod = models.PaymentMethod(method)
	o.Status = models.OrderStatus(status)
	if err := json.Unmarshal([]byte(itemsJSON), &o.Items); err != nil {
		o.Items = nil
	}
	return o, nil
}

func (s *ScyllaOrders) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.session.Query(`UPDATE orders SET status = ? WHERE order_id = ?`, string(status), id).
		WithContext(ctx).Exec()
}
