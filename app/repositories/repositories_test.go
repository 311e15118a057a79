package repositories_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/shashiranjanraj/foodshop/app/models"
	"github.com/shashiranjanraj/foodshop/app/repositories"
)

func mock(t *testing.T) *mtest.T {
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

func TestProductCreate(t *testing.T) {
	mt := mock(t)

	mt.Run("assigns id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := repositories.NewProductRepository(mt.DB)

		p := models.Product{Title: "Soup", Price: 3, Category: "Soups"}
		id, err := repo.Create(context.Background(), &p)
		require.NoError(mt, err)

		assert.True(mt, primitive.IsValidObjectID(id))
		assert.Equal(mt, id, p.ID)
		assert.False(mt, p.CreatedAt.IsZero())
	})

	mt.Run("store error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index: 0, Code: 11000, Message: "duplicate key error",
		}))
		repo := repositories.NewProductRepository(mt.DB)

		_, err := repo.Create(context.Background(), &models.Product{Title: "Soup"})
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "duplicate key error")
	})
}

func TestProductList(t *testing.T) {
	mt := mock(t)

	mt.Run("maps _id to id", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "foodshop.product", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: oid},
				{Key: "title", Value: "Margherita Pizza"},
				{Key: "price", Value: 9.99},
				{Key: "category", Value: "Pizza"},
				{Key: "rating", Value: 4.7},
				{Key: "in_stock", Value: true},
			},
		))
		repo := repositories.NewProductRepository(mt.DB)

		products, err := repo.List(context.Background(), models.ProductFilter{Category: "Pizza"})
		require.NoError(mt, err)
		require.Len(mt, products, 1)

		assert.Equal(mt, oid.Hex(), products[0].ID)
		assert.Equal(mt, "Margherita Pizza", products[0].Title)
		assert.Equal(mt, 9.99, products[0].Price)
		assert.True(mt, products[0].InStock)
		assert.Nil(mt, products[0].Description)
	})

	mt.Run("empty is not nil", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "foodshop.product", mtest.FirstBatch))
		repo := repositories.NewProductRepository(mt.DB)

		products, err := repo.List(context.Background(), models.ProductFilter{})
		require.NoError(mt, err)
		assert.NotNil(mt, products)
		assert.Empty(mt, products)
	})

	mt.Run("command error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code: 13, Name: "Unauthorized", Message: "not authorized",
		}))
		repo := repositories.NewProductRepository(mt.DB)

		_, err := repo.List(context.Background(), models.ProductFilter{})
		assert.ErrorContains(mt, err, "find products")
	})
}

func TestProductCount(t *testing.T) {
	mt := mock(t)

	mt.Run("count", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "foodshop.product", mtest.FirstBatch,
			bson.D{{Key: "n", Value: int32(4)}},
		))
		repo := repositories.NewProductRepository(mt.DB)

		n, err := repo.Count(context.Background())
		require.NoError(mt, err)
		assert.Equal(mt, int64(4), n)
	})
}

func TestOrderRepository(t *testing.T) {
	mt := mock(t)

	mt.Run("create", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := repositories.NewOrderRepository(mt.DB)

		o := models.Order{CustomerName: "Ann", Status: models.StatusPending}
		id, err := repo.Create(context.Background(), &o)
		require.NoError(mt, err)
		assert.True(mt, primitive.IsValidObjectID(id))
	})

	mt.Run("list", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "foodshop.order", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: oid},
				{Key: "customer_name", Value: "Ann"},
				{Key: "customer_email", Value: "ann@example.com"},
				{Key: "items", Value: bson.A{
					bson.D{{Key: "product_id", Value: "p1"}, {Key: "title", Value: "Pizza"}, {Key: "price", Value: 9.99}, {Key: "quantity", Value: int32(1)}},
				}},
				{Key: "subtotal", Value: 9.99},
				{Key: "tax", Value: 0.8},
				{Key: "total", Value: 10.79},
				{Key: "status", Value: "pending"},
			},
		))
		repo := repositories.NewOrderRepository(mt.DB)

		orders, err := repo.List(context.Background())
		require.NoError(mt, err)
		require.Len(mt, orders, 1)
		assert.Equal(mt, oid.Hex(), orders[0].ID)
		assert.Equal(mt, 1, orders[0].Items[0].Quantity)
		assert.Equal(mt, 10.79, orders[0].Total)
	})
}
