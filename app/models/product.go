package models

import "time"

// Default values applied when a product payload omits them.
const (
	DefaultRating  = 4.5
	DefaultInStock = true
)

// Product is a catalog entry, stored in the "product" collection.
type Product struct {
	ID          string    `json:"id"          bson:"-"`
	Title       string    `json:"title"       bson:"title"`
	Description *string   `json:"description" bson:"description"`
	Price       float64   `json:"price"       bson:"price"`
	Category    string    `json:"category"    bson:"category"`
	ImageURL    *string   `json:"image_url"   bson:"image_url"`
	Rating      float64   `json:"rating"      bson:"rating"`
	InStock     bool      `json:"in_stock"    bson:"in_stock"`
	CreatedAt   time.Time `json:"created_at"  bson:"created_at"`
}

// ProductInput is the POST /api/products payload. Pointer fields tell an
// absent value apart from an explicit zero.
type ProductInput struct {
	Title       string   `json:"title"       validate:"required"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"       validate:"required,gte=0"`
	Category    string   `json:"category"    validate:"required"`
	ImageURL    *string  `json:"image_url"`
	Rating      *float64 `json:"rating"      validate:"gte=0,lte=5"`
	InStock     *bool    `json:"in_stock"`
}

// Product converts a validated input into a Product with defaults applied.
func (in ProductInput) Product() Product {
	p := Product{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		Rating:      DefaultRating,
		InStock:     DefaultInStock,
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Rating != nil {
		p.Rating = *in.Rating
	}
	if in.InStock != nil {
		p.InStock = *in.InStock
	}
	return p
}

// ProductFilter narrows a product listing. Zero value matches everything.
type ProductFilter struct {
	Category string
}

// SeedResult reports what a seed run did.
type SeedResult struct {
	Seeded bool  `json:"seeded"`
	Count  int64 `json:"count"`
}
