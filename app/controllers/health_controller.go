package controllers

import (
	"context"
	"time"

	"github.com/shashiranjanraj/foodshop/pkg/ctx"
	"github.com/shashiranjanraj/foodshop/pkg/response"
)

const (
	maxListedCollections = 10
	maxInlineError       = 50
	inspectTimeout       = 5 * time.Second
)

// StoreInspector exposes what the diagnostics endpoint reports about the
// database. *database.Store satisfies it.
type StoreInspector interface {
	Name() string
	CollectionNames(ctx context.Context) ([]string, error)
}

// Diagnostics is the GET /test payload.
type Diagnostics struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      *string  `json:"database_url"`
	DatabaseName     *string  `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

type HealthController struct {
	store  StoreInspector
	urlSet func() bool
}

// NewHealthController reports on store, which may be nil. urlSet tells
// whether DATABASE_URL was configured.
func NewHealthController(store StoreInspector, urlSet func() bool) *HealthController {
	return &HealthController{store: store, urlSet: urlSet}
}

// Root answers GET /.
func (c *HealthController) Root(x *ctx.Context) {
	x.OK(map[string]string{"message": "Food E-commerce Backend is running"})
}

// Test answers GET /test. It always responds 200; store problems are
// reported inside the payload.
func (c *HealthController) Test(x *ctx.Context) {
	d := Diagnostics{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}
	if c.store == nil {
		x.OK(d)
		return
	}

	url := "❌ Not Set"
	if c.urlSet != nil && c.urlSet() {
		url = "✅ Set"
	}
	name := c.store.Name()
	d.Database = "✅ Available"
	d.DatabaseURL = &url
	d.DatabaseName = &name
	d.ConnectionStatus = "Connected"

	reqCtx, cancel := context.WithTimeout(x.Context(), inspectTimeout)
	defer cancel()

	names, err := c.store.CollectionNames(reqCtx)
	if err != nil {
		d.Database = "⚠️  Connected but Error: " + response.Truncate(err.Error(), maxInlineError)
		x.OK(d)
		return
	}
	if len(names) > maxListedCollections {
		names = names[:maxListedCollections]
	}
	if names != nil {
		d.Collections = names
	}
	d.Database = "✅ Connected & Working"
	x.OK(d)
}
