package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/foodshop/app/models"
	"github.com/shashiranjanraj/foodshop/pkg/metrics"
)

// OrderCollection is the collection orders live in.
const OrderCollection = "order"

type orderRecord struct {
	ID           primitive.ObjectID `bson:"_id"`
	models.Order `bson:",inline"`
}

// OrderRepository handles database operations for Order.
type OrderRepository struct {
	col *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{col: db.Collection(OrderCollection)}
}

// Create inserts o and returns its hex id.
func (r *OrderRepository) Create(ctx context.Context, o *models.Order) (string, error) {
	defer metrics.ObserveStoreOp(OrderCollection, "insert", time.Now())

	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}
	res, err := r.col.InsertOne(ctx, o)
	if err != nil {
		return "", fmt.Errorf("insert order: %w", err)
	}

	o.ID = hexID(res.InsertedID)
	return o.ID, nil
}

// List returns every stored order.
func (r *OrderRepository) List(ctx context.Context) ([]models.Order, error) {
	defer metrics.ObserveStoreOp(OrderCollection, "find", time.Now())

	cur, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}
	var records []orderRecord
	if err := cur.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}

	orders := make([]models.Order, 0, len(records))
	for _, rec := range records {
		o := rec.Order
		o.ID = rec.ID.Hex()
		if o.Items == nil {
			o.Items = []models.OrderItem{}
		}
		orders = append(orders, o)
	}
	return orders, nil
}
