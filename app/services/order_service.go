package services

import (
	"context"
	"errors"

	"github.com/shashiranjanraj/foodshop/app/models"
	"github.com/shashiranjanraj/foodshop/pkg/logger"
	"github.com/shashiranjanraj/foodshop/pkg/metrics"
)

// OrderStore is the persistence the order service needs.
type OrderStore interface {
	Create(ctx context.Context, o *models.Order) (string, error)
	List(ctx context.Context) ([]models.Order, error)
}

type OrderService struct {
	store OrderStore
}

func NewOrderService(store OrderStore) *OrderService {
	return &OrderService{store: store}
}

// Place checks the totals of a validated order and stores it. Nothing is
// written when the totals disagree.
func (s *OrderService) Place(ctx context.Context, in models.OrderInput) (string, error) {
	o := in.Order()
	if err := CheckTotals(o); err != nil {
		metrics.OrdersRejected.WithLabelValues("totals").Inc()
		return "", err
	}

	id, err := s.store.Create(ctx, &o)
	if err != nil {
		metrics.OrdersRejected.WithLabelValues("store").Inc()
		return "", err
	}

	metrics.OrdersCreated.Inc()
	logger.WithCtx(ctx).Info("order created", "order_id", id, "items", len(o.Items), "total", o.Total)
	return id, nil
}

// List returns every stored order.
func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	return s.store.List(ctx)
}

// IsBusinessRule reports whether err is a totals violation.
func IsBusinessRule(err error) bool {
	return errors.Is(err, ErrSubtotalMismatch) || errors.Is(err, ErrTotalMismatch)
}
