package app_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/foodshop/pkg/app"
)

func TestRouteList(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, app.RouteList(&out))

	text := out.String()
	for _, want := range []string{
		"products.index", "products.store", "products.seed",
		"orders.index", "orders.store",
		"home", "diagnostics", "metrics",
		"/api/products/seed",
	} {
		assert.Contains(t, text, want)
	}
}
