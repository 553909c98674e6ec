package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/ciganahub/cigana-hub/internal/market"
	"github.com/ciganahub/cigana-hub/internal/redisx"
)

// Store is the per-user durable cart slot. Implementations must treat a
// missing slot as an empty cart.
type Store interface {
	Load(ctx context.Context, userID string) ([]market.CartItem, error)
	Save(ctx context.Context, userID string, items []market.CartItem) error
	Clear(ctx context.Context, userID string) error
}

type RedisStore struct {
	RDB *redis.Client
}

func (s *RedisStore) Load(ctx context.Context, userID string) ([]market.CartItem, error) {
	raw, err := s.RDB.Get(ctx, fmt.Sprintf(redisx.KeyCart, userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var items []market.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return items, nil
}

func (s *RedisStore) Save(ctx context.Context, userID string, items []market.CartItem) error {
	b, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.RDB.Set(ctx, fmt.Sprintf(redisx.KeyCart, userID), b, redisx.TTLCart).Err()
}

func (s *RedisStore) Clear(ctx context.Context, userID string) error {
	return s.RDB.Del(ctx, fmt.Sprintf(redisx.KeyCart, userID)).Err()
}

// MemoryStore backs tests and local runs without Redis.
type MemoryStore struct {
	mu    sync.Mutex
	carts map[string][]market.CartItem
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string][]market.CartItem)}
}

func (s *MemoryStore) Load(_ context.Context, userID string) ([]market.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.carts[userID]
	out := make([]market.CartItem, len(items))
	copy(out, items)
	return out, nil
}

func (s *MemoryStore) Save(_ context.Context, userID string, items []market.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]market.CartItem, len(items))
	copy(cp, items)
	s.carts[userID] = cp
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
	return nil
}
