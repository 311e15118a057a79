package controllers

import (
	"context"
	"net/http"

	"github.com/shashiranjanraj/foodshop/app/models"
	"github.com/shashiranjanraj/foodshop/app/services"
	"github.com/shashiranjanraj/foodshop/pkg/ctx"
	"github.com/shashiranjanraj/foodshop/pkg/metrics"
)

// OrderService is what the order endpoints call.
type OrderService interface {
	Place(ctx context.Context, in models.OrderInput) (string, error)
	List(ctx context.Context) ([]models.Order, error)
}

type OrderController struct {
	service OrderService
}

func NewOrderController(service OrderService) *OrderController {
	return &OrderController{service: service}
}

// Store handles POST /api/orders. Mismatched totals are a 400.
func (c *OrderController) Store(x *ctx.Context) {
	var input models.OrderInput
	if !x.BindJSON(&input) {
		metrics.OrdersRejected.WithLabelValues("payload").Inc()
		return
	}

	id, err := c.service.Place(x.Context(), input)
	switch {
	case services.IsBusinessRule(err):
		x.Error(http.StatusBadRequest, err.Error())
	case err != nil:
		x.ServerError(err)
	default:
		x.OK(map[string]string{"id": id})
	}
}

// Index handles GET /api/orders.
func (c *OrderController) Index(x *ctx.Context) {
	orders, err := c.service.List(x.Context())
	if err != nil {
		x.ServerError(err)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	x.OK(orders)
}
