package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/shashiranjanraj/foodshop/app/models"
)

type memProducts struct {
	mu       sync.Mutex
	items    []models.Product
	lists    int
	failNext error
}

func (m *memProducts) Create(_ context.Context, p *models.Product) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failNext; err != nil {
		m.failNext = nil
		return "", err
	}
	p.ID = fmt.Sprintf("%024x", len(m.items)+1)
	m.items = append(m.items, *p)
	return p.ID, nil
}

func (m *memProducts) List(_ context.Context, f models.ProductFilter) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lists++
	out := []models.Product{}
	for _, p := range m.items {
		if f.Category == "" || p.Category == f.Category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memProducts) Count(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.items)), nil
}

type memOrders struct {
	items []models.Order
	err   error
}

func (m *memOrders) Create(_ context.Context, o *models.Order) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	o.ID = fmt.Sprintf("%024x", len(m.items)+1)
	m.items = append(m.items, *o)
	return o.ID, nil
}

func (m *memOrders) List(context.Context) ([]models.Order, error) {
	return append([]models.Order{}, m.items...), nil
}

// memCache mimics the Redis-backed cache with JSON round-trips.
type memCache struct {
	data    map[string][]byte
	version int64
	down    bool
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (c *memCache) Get(_ context.Context, key string, dest interface{}) bool {
	raw, ok := c.data[key]
	return ok && json.Unmarshal(raw, dest) == nil
}

func (c *memCache) Set(_ context.Context, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.data[key] = raw
	return nil
}

func (c *memCache) Version(context.Context, string) (int64, error) {
	if c.down {
		return 0, errors.New("connection refused")
	}
	return c.version, nil
}

func (c *memCache) Bump(context.Context, string) error {
	if c.down {
		return errors.New("connection refused")
	}
	c.version++
	return nil
}
