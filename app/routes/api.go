package routes

import (
	"github.com/shashiranjanraj/foodshop/app/controllers"
	"github.com/shashiranjanraj/foodshop/pkg/ctx"
	"github.com/shashiranjanraj/foodshop/pkg/router"
)

// Controllers groups the handlers mounted by RegisterAPI.
type Controllers struct {
	Health   *controllers.HealthController
	Products *controllers.ProductController
	Orders   *controllers.OrderController
}

// RegisterAPI mounts every public endpoint on r.
func RegisterAPI(r *router.Router, c Controllers) {
	r.Get("/", "home", ctx.Wrap(c.Health.Root))
	r.Get("/test", "diagnostics", ctx.Wrap(c.Health.Test))

	api := r.Group("/api")

	api.Get("/products", "products.index", ctx.Wrap(c.Products.Index))
	api.Post("/products", "products.store", ctx.Wrap(c.Products.Store))
	api.Post("/products/seed", "products.seed", ctx.Wrap(c.Products.Seed))

	api.Get("/orders", "orders.index", ctx.Wrap(c.Orders.Index))
	api.Post("/orders", "orders.store", ctx.Wrap(c.Orders.Store))
}
