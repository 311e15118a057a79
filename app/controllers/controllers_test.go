package controllers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/foodshop/app/controllers"
	"github.com/shashiranjanraj/foodshop/app/models"
	"github.com/shashiranjanraj/foodshop/app/services"
	"github.com/shashiranjanraj/foodshop/pkg/ctx"
)

// ─── stubs ────────────────────────────────────────────────────────────────────

type stubProducts struct {
	created  []models.ProductInput
	list     []models.Product
	category string
	seed     models.SeedResult
	err      error
}

func (s *stubProducts) Create(_ context.Context, in models.ProductInput) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.created = append(s.created, in)
	return "65a000000000000000000001", nil
}

func (s *stubProducts) List(_ context.Context, category string) ([]models.Product, error) {
	s.category = category
	return s.list, s.err
}

func (s *stubProducts) Seed(context.Context) (models.SeedResult, error) { return s.seed, s.err }

type stubOrders struct {
	placed []models.OrderInput
	err    error
}

func (s *stubOrders) Place(_ context.Context, in models.OrderInput) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.placed = append(s.placed, in)
	return "65a0000000000000000000aa", nil
}

func (s *stubOrders) List(context.Context) ([]models.Order, error) { return nil, s.err }

type stubStore struct {
	names []string
	err   error
}

func (s stubStore) Name() string { return "foodshop" }

func (s stubStore) CollectionNames(context.Context) ([]string, error) { return s.names, s.err }

func do(h ctx.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	ctx.Wrap(h)(rec, req)
	return rec
}

// ─── health ───────────────────────────────────────────────────────────────────

func TestRoot(t *testing.T) {
	c := controllers.NewHealthController(nil, nil)
	rec := do(c.Root, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Food E-commerce Backend is running"}`, rec.Body.String())
}

func TestDiagnosticsWithoutStore(t *testing.T) {
	c := controllers.NewHealthController(nil, nil)
	rec := do(c.Test, http.MethodGet, "/test", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"backend": "✅ Running",
		"database": "❌ Not Available",
		"database_url": null,
		"database_name": null,
		"connection_status": "Not Connected",
		"collections": []
	}`, rec.Body.String())
}

func TestDiagnosticsConnected(t *testing.T) {
	names := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}
	c := controllers.NewHealthController(stubStore{names: names}, func() bool { return true })
	rec := do(c.Test, http.MethodGet, "/test", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"backend": "✅ Running",
		"database": "✅ Connected & Working",
		"database_url": "✅ Set",
		"database_name": "foodshop",
		"connection_status": "Connected",
		"collections": ["a","b","c","d","e","f","g","h","i","j"]
	}`, rec.Body.String())
}

func TestDiagnosticsListError(t *testing.T) {
	c := controllers.NewHealthController(stubStore{err: errors.New(strings.Repeat("e", 80))}, func() bool { return false })
	rec := do(c.Test, http.MethodGet, "/test", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"database":"⚠️  Connected but Error: `+strings.Repeat("e", 50)+`"`)
	assert.Contains(t, rec.Body.String(), `"database_url":"❌ Not Set"`)
}

// ─── products ─────────────────────────────────────────────────────────────────

func TestProductStore(t *testing.T) {
	svc := &stubProducts{}
	c := controllers.NewProductController(svc)

	rec := do(c.Store, http.MethodPost, "/api/products", `{"title":"Soup","price":0,"category":"Soups"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"65a000000000000000000001"}`, rec.Body.String())
	require.Len(t, svc.created, 1)
	assert.Equal(t, 0.0, *svc.created[0].Price)
}

func TestProductStoreValidation(t *testing.T) {
	svc := &stubProducts{}
	c := controllers.NewProductController(svc)

	rec := do(c.Store, http.MethodPost, "/api/products", `{"title":"Soup","category":"Soups","rating":7}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{
		"detail": "Validation failed",
		"errors": {
			"price": "The price field is required.",
			"rating": "The rating must be less than or equal to 5."
		}
	}`, rec.Body.String())
	assert.Empty(t, svc.created)
}

func TestProductStoreMalformed(t *testing.T) {
	c := controllers.NewProductController(&stubProducts{})
	rec := do(c.Store, http.MethodPost, "/api/products", `{"title":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductStoreFailure(t *testing.T) {
	c := controllers.NewProductController(&stubProducts{err: errors.New("server selection error")})
	rec := do(c.Store, http.MethodPost, "/api/products", `{"title":"Soup","price":1,"category":"Soups"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"detail":"server selection error"}`, rec.Body.String())
}

func TestProductIndex(t *testing.T) {
	svc := &stubProducts{}
	c := controllers.NewProductController(svc)

	rec := do(c.Index, http.MethodGet, "/api/products?category=Pizza", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
	assert.Equal(t, "Pizza", svc.category)
}

func TestProductSeed(t *testing.T) {
	c := controllers.NewProductController(&stubProducts{seed: models.SeedResult{Seeded: true, Count: 4}})
	rec := do(c.Seed, http.MethodPost, "/api/products/seed", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"seeded":true,"count":4}`, rec.Body.String())
}

// ─── orders ───────────────────────────────────────────────────────────────────

const validOrder = `{
	"customer_name": "Ann",
	"customer_email": "ann@example.com",
	"customer_address": "1 Main St",
	"items": [{"product_id": "p1", "title": "Margherita Pizza", "price": 9.99, "quantity": 1}],
	"subtotal": 9.99,
	"tax": 0.80,
	"total": 10.79
}`

func TestOrderStore(t *testing.T) {
	svc := &stubOrders{}
	c := controllers.NewOrderController(svc)

	rec := do(c.Store, http.MethodPost, "/api/orders", validOrder)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"65a0000000000000000000aa"}`, rec.Body.String())
	require.Len(t, svc.placed, 1)
}

func TestOrderStoreBusinessRule(t *testing.T) {
	c := controllers.NewOrderController(&stubOrders{err: services.ErrSubtotalMismatch})
	rec := do(c.Store, http.MethodPost, "/api/orders", validOrder)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"detail":"Subtotal does not match items total"}`, rec.Body.String())
}

func TestOrderStoreValidation(t *testing.T) {
	svc := &stubOrders{}
	c := controllers.NewOrderController(svc)

	rec := do(c.Store, http.MethodPost, "/api/orders", `{
		"customer_name": "Ann",
		"customer_email": "ann@example.com",
		"customer_address": "1 Main St",
		"items": [],
		"subtotal": 0, "tax": 0, "total": 0
	}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `"items":"The items field is required."`)
	assert.Empty(t, svc.placed)
}

func TestOrderStoreFailureTruncated(t *testing.T) {
	c := controllers.NewOrderController(&stubOrders{err: errors.New(strings.Repeat("z", 300))})
	rec := do(c.Store, http.MethodPost, "/api/orders", validOrder)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"detail":"`+strings.Repeat("z", 200)+`"}`, rec.Body.String())
}

func TestOrderIndexEmpty(t *testing.T) {
	c := controllers.NewOrderController(&stubOrders{})
	rec := do(c.Index, http.MethodGet, "/api/orders", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
