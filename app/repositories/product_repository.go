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

// ProductCollection is the collection products live in.
const ProductCollection = "product"

type productRecord struct {
	ID             primitive.ObjectID `bson:"_id"`
	models.Product `bson:",inline"`
}

// ProductRepository handles database operations for Product.
type ProductRepository struct {
	col *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{col: db.Collection(ProductCollection)}
}

// Create inserts p and returns the hex id the store assigned. p.ID and
// p.CreatedAt are filled in on success.
func (r *ProductRepository) Create(ctx context.Context, p *models.Product) (string, error) {
	defer metrics.ObserveStoreOp(ProductCollection, "insert", time.Now())

	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return "", fmt.Errorf("insert product: %w", err)
	}

	p.ID = hexID(res.InsertedID)
	return p.ID, nil
}

// List returns every product matching f, in store order.
func (r *ProductRepository) List(ctx context.Context, f models.ProductFilter) ([]models.Product, error) {
	defer metrics.ObserveStoreOp(ProductCollection, "find", time.Now())

	filter := bson.M{}
	if f.Category != "" {
		filter["category"] = f.Category
	}

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	var records []productRecord
	if err := cur.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	products := make([]models.Product, 0, len(records))
	for _, rec := range records {
		p := rec.Product
		p.ID = rec.ID.Hex()
		products = append(products, p)
	}
	return products, nil
}

// Count returns the number of stored products.
func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	defer metrics.ObserveStoreOp(ProductCollection, "count", time.Now())

	n, err := r.col.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

func hexID(id interface{}) string {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(id)
}
