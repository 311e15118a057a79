// Package app wires configuration, the Mongo store, the cache, services and
// controllers into one Application, and implements the CLI commands on top.
//
//	a, err := app.Boot(ctx)
//	if err != nil { ... }
//	defer a.Close(context.Background())
//
//	h := a.Kernel().Handler()
package app

import (
	"context"
	"fmt"

	"github.com/shashiranjanraj/foodshop/app/controllers"
	"github.com/shashiranjanraj/foodshop/app/repositories"
	"github.com/shashiranjanraj/foodshop/app/routes"
	"github.com/shashiranjanraj/foodshop/app/services"
	"github.com/shashiranjanraj/foodshop/config"
	"github.com/shashiranjanraj/foodshop/internal/kernel"
	"github.com/shashiranjanraj/foodshop/pkg/cache"
	"github.com/shashiranjanraj/foodshop/pkg/database"
	"github.com/shashiranjanraj/foodshop/pkg/logger"
	"github.com/shashiranjanraj/foodshop/pkg/router"
)

// Application holds every long-lived dependency of the process.
type Application struct {
	Store    *database.Store
	Cache    *cache.Cache
	Products *services.ProductService
	Orders   *services.OrderService

	logSink *logger.MongoHandler
}

// Boot loads configuration and opens the store. A Redis failure only
// disables caching; a Mongo failure aborts.
func Boot(ctx context.Context) (*Application, error) {
	if err := config.Load(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	store, err := database.Connect(ctx, config.DatabaseURL(), config.DatabaseName())
	if err != nil {
		return nil, err
	}
	logger.Info("database connected", "database", store.Name())

	a := &Application{Store: store}
	if config.LogToMongo() {
		a.logSink = logger.AttachMongo(store.DB)
	}

	a.Cache, err = cache.Connect(ctx, config.RedisAddr(), config.RedisPassword(), config.CacheTTL())
	switch {
	case err != nil:
		logger.Warn("redis unavailable, product cache disabled", "error", err)
	case a.Cache.Enabled():
		logger.Info("redis connected", "addr", config.RedisAddr())
	}

	a.Products = services.NewProductService(repositories.NewProductRepository(store.DB), a.Cache)
	a.Orders = services.NewOrderService(repositories.NewOrderRepository(store.DB))
	return a, nil
}

// Controllers builds the HTTP handlers. A nil Application yields handlers
// with no backing services, which is enough to list routes.
func (a *Application) Controllers() routes.Controllers {
	var (
		store    controllers.StoreInspector
		products controllers.ProductService
		orders   controllers.OrderService
	)
	if a != nil {
		store, products, orders = a.Store, a.Products, a.Orders
	}
	return routes.Controllers{
		Health:   controllers.NewHealthController(store, config.DatabaseURLSet),
		Products: controllers.NewProductController(products),
		Orders:   controllers.NewOrderController(orders),
	}
}

// Kernel returns the HTTP kernel with every application route mounted.
func (a *Application) Kernel() *kernel.HTTPKernel {
	c := a.Controllers()
	return kernel.NewHTTPKernel(func(r *router.Router) {
		routes.RegisterAPI(r, c)
	})
}

// Close releases the cache, flushes the log sink, then disconnects Mongo.
func (a *Application) Close(ctx context.Context) {
	if err := a.Cache.Close(); err != nil {
		logger.Warn("redis close", "error", err)
	}
	if a.logSink != nil {
		a.logSink.Close()
	}
	if err := a.Store.Close(ctx); err != nil {
		logger.Warn("database close", "error", err)
	}
}
