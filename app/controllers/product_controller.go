package controllers

import (
	"context"

	"github.com/shashiranjanraj/foodshop/app/models"
	"github.com/shashiranjanraj/foodshop/pkg/ctx"
)

// ProductService is what the product endpoints call.
type ProductService interface {
	Create(ctx context.Context, in models.ProductInput) (string, error)
	List(ctx context.Context, category string) ([]models.Product, error)
	Seed(ctx context.Context) (models.SeedResult, error)
}

type ProductController struct {
	service ProductService
}

func NewProductController(service ProductService) *ProductController {
	return &ProductController{service: service}
}

// Store handles POST /api/products.
func (c *ProductController) Store(x *ctx.Context) {
	var input models.ProductInput
	if !x.BindJSON(&input) {
		return
	}

	id, err := c.service.Create(x.Context(), input)
	if err != nil {
		x.ServerError(err)
		return
	}
	x.OK(map[string]string{"id": id})
}

// Index handles GET /api/products with an optional ?category= filter.
func (c *ProductController) Index(x *ctx.Context) {
	products, err := c.service.List(x.Context(), x.Query("category"))
	if err != nil {
		x.ServerError(err)
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	x.OK(products)
}

// Seed handles POST /api/products/seed.
func (c *ProductController) Seed(x *ctx.Context) {
	res, err := c.service.Seed(x.Context())
	if err != nil {
		x.ServerError(err)
		return
	}
	x.OK(res)
}
