package cart

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"locaneon_back_end/internal/models"
)

const cartTTL = 30 * 24 * time.Hour

// RedisManager persiste o carrinho como blob JSON em `cart:<sessão>`, com TTL
// de 30 dias. Sobrevive a restarts do servidor, diferente do MemoryManager.
type RedisManager struct {
	client *redis.Client
}

func NewRedisManager(client *redis.Client) *RedisManager {
	return &RedisManager{client: client}
}

func (m *RedisManager) key(sessionID string) string {
	return "cart:" + sessionID
}

func (m *RedisManager) load(ctx context.Context, sessionID string) ([]models.CartItem, error) {
	data, err := m.client.Get(ctx, m.key(sessionID)).Result()
	if err == redis.Nil || data == "" {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var items []models.CartItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (m *RedisManager) save(ctx context.Context, sessionID string, items []models.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return m.client.Set(ctx, m.key(sessionID), data, cartTTL).Err()
}

func (m *RedisManager) Get(ctx context.Context, sessionID string) ([]models.CartItem, error) {
	return m.load(ctx, sessionID)
}

func (m *RedisManager) Add(ctx context.Context, sessionID string, item models.CartItem) error {
	items, err := m.load(ctx, sessionID)
	if err != nil {
		return err
	}
	return m.save(ctx, sessionID, addItem(items, item))
}

func (m *RedisManager) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) error {
	items, err := m.load(ctx, sessionID)
	if err != nil {
		return err
	}
	return m.save(ctx, sessionID, setQuantity(items, productID, quantity))
}

func (m *RedisManager) Remove(ctx context.Context, sessionID, productID string) error {
	items, err := m.load(ctx, sessionID)
	if err != nil {
		return err
	}
	return m.save(ctx, sessionID, removeItem(items, productID))
}

func (m *RedisManager) Clear(ctx context.Context, sessionID string) error {
	return m.client.Del(ctx, m.key(sessionID)).Err()
}
