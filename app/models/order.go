package models

import (
	"strings"
	"time"
)

// Order statuses.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// OrderItem is a product snapshot embedded in an order. ProductID is not
// checked against the catalog.
type OrderItem struct {
	ProductID string  `json:"product_id" bson:"product_id"`
	Title     string  `json:"title"      bson:"title"`
	Price     float64 `json:"price"      bson:"price"`
	Quantity  int     `json:"quantity"   bson:"quantity"`
	ImageURL  *string `json:"image_url"  bson:"image_url"`
}

// Order is a placed order, stored in the "order" collection.
type Order struct {
	ID              string      `json:"id"               bson:"-"`
	CustomerName    string      `json:"customer_name"    bson:"customer_name"`
	CustomerEmail   string      `json:"customer_email"   bson:"customer_email"`
	CustomerAddress string      `json:"customer_address" bson:"customer_address"`
	Items           []OrderItem `json:"items"            bson:"items"`
	Subtotal        float64     `json:"subtotal"         bson:"subtotal"`
	Tax             float64     `json:"tax"              bson:"tax"`
	Total           float64     `json:"total"            bson:"total"`
	Status          string      `json:"status"           bson:"status"`
	CreatedAt       time.Time   `json:"created_at"       bson:"created_at"`
}

// OrderItemInput is one line of an order payload.
type OrderItemInput struct {
	ProductID string   `json:"product_id" validate:"required"`
	Title     string   `json:"title"      validate:"required"`
	Price     *float64 `json:"price"      validate:"required,gte=0"`
	Quantity  *int     `json:"quantity"   validate:"required,min=1"`
	ImageURL  *string  `json:"image_url"`
}

// OrderInput is the POST /api/orders payload.
type OrderInput struct {
	CustomerName    string           `json:"customer_name"    validate:"required"`
	CustomerEmail   string           `json:"customer_email"   validate:"required,email"`
	CustomerAddress string           `json:"customer_address" validate:"required"`
	Items           []OrderItemInput `json:"items"            validate:"required,min=1,dive"`
	Subtotal        *float64         `json:"subtotal"         validate:"required,gte=0"`
	Tax             *float64         `json:"tax"              validate:"required,gte=0"`
	Total           *float64         `json:"total"            validate:"required,gte=0"`
	Status          string           `json:"status"           validate:"nullable,in=pending|confirmed|delivered|cancelled"`
}

// Order converts a validated input into an Order. An empty or blank status
// becomes pending.
func (in OrderInput) Order() Order {
	o := Order{
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		CustomerAddress: in.CustomerAddress,
		Items:           make([]OrderItem, 0, len(in.Items)),
		Subtotal:        deref(in.Subtotal),
		Tax:             deref(in.Tax),
		Total:           deref(in.Total),
		Status:          strings.TrimSpace(in.Status),
	}
	if o.Status == "" {
		o.Status = StatusPending
	}
	for _, it := range in.Items {
		item := OrderItem{
			ProductID: it.ProductID,
			Title:     it.Title,
			Price:     deref(it.Price),
			ImageURL:  it.ImageURL,
		}
		if it.Quantity != nil {
			item.Quantity = *it.Quantity
		}
		o.Items = append(o.Items, item)
	}
	return o
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
