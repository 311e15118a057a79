package services

import (
	"context"

	"github.com/shashiranjanraj/foodshop/app/models"
	"github.com/shashiranjanraj/foodshop/database/seeders"
	"github.com/shashiranjanraj/foodshop/pkg/cache"
	"github.com/shashiranjanraj/foodshop/pkg/logger"
)

const productsNamespace = "products"

// ProductStore is the persistence the product service needs.
type ProductStore interface {
	Create(ctx context.Context, p *models.Product) (string, error)
	List(ctx context.Context, f models.ProductFilter) ([]models.Product, error)
	Count(ctx context.Context) (int64, error)
}

// ListCache caches product listings. *cache.Cache satisfies it.
type ListCache interface {
	Get(ctx context.Context, key string, dest interface{}) bool
	Set(ctx context.Context, key string, value interface{}) error
	Version(ctx context.Context, ns string) (int64, error)
	Bump(ctx context.Context, ns string) error
}

type ProductService struct {
	store ProductStore
	cache ListCache
}

// NewProductService builds the service. c may be nil to disable caching.
func NewProductService(store ProductStore, c ListCache) *ProductService {
	if c == nil {
		c = (*cache.Cache)(nil)
	}
	return &ProductService{store: store, cache: c}
}

// Create stores a validated product and invalidates cached listings.
func (s *ProductService) Create(ctx context.Context, in models.ProductInput) (string, error) {
	p := in.Product()
	id, err := s.store.Create(ctx, &p)
	if err != nil {
		return "", err
	}
	s.invalidate(ctx)
	return id, nil
}

// List returns products, optionally restricted to one category. Cache
// failures fall through to the store.
func (s *ProductService) List(ctx context.Context, category string) ([]models.Product, error) {
	version, err := s.cache.Version(ctx, productsNamespace)
	if err != nil {
		logger.WithCtx(ctx).Warn("product cache unavailable", "error", err)
		return s.store.List(ctx, models.ProductFilter{Category: category})
	}

	key := cache.VersionedKey(productsNamespace, version, category)
	var products []models.Product
	if s.cache.Get(ctx, key, &products) && products != nil {
		return products, nil
	}

	products, err = s.store.List(ctx, models.ProductFilter{Category: category})
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, products); err != nil {
		logger.WithCtx(ctx).Warn("product cache write failed", "key", key, "error", err)
	}
	return products, nil
}

// Seed inserts the demo catalog when no product exists yet. Otherwise it
// reports the current count and writes nothing.
func (s *ProductService) Seed(ctx context.Context) (models.SeedResult, error) {
	n, err := s.store.Count(ctx)
	if err != nil {
		return models.SeedResult{}, err
	}
	if n > 0 {
		return models.SeedResult{Seeded: false, Count: n}, nil
	}

	demo := seeders.DemoProducts()
	for i := range demo {
		if _, err := s.store.Create(ctx, &demo[i]); err != nil {
			s.invalidate(ctx)
			return models.SeedResult{}, err
		}
	}
	s.invalidate(ctx)

	logger.WithCtx(ctx).Info("demo catalog seeded", "count", len(demo))
	return models.SeedResult{Seeded: true, Count: int64(len(demo))}, nil
}

func (s *ProductService) invalidate(ctx context.Context) {
	if err := s.cache.Bump(ctx, productsNamespace); err != nil {
		logger.WithCtx(ctx).Warn("product cache invalidation failed", "error", err)
	}
}
