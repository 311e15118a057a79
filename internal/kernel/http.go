// Package kernel assembles the HTTP handler: global middleware, the
// /metrics endpoint, JSON 404/405 answers, then the application routes.
package kernel

import (
	"net/http"

	"github.com/shashiranjanraj/foodshop/pkg/metrics"
	"github.com/shashiranjanraj/foodshop/pkg/middleware"
	"github.com/shashiranjanraj/foodshop/pkg/reqid"
	"github.com/shashiranjanraj/foodshop/pkg/response"
	"github.com/shashiranjanraj/foodshop/pkg/router"
)

type HTTPKernel struct {
	router *router.Router
}

// NewHTTPKernel builds the router and runs every registration callback.
func NewHTTPKernel(register ...func(*router.Router)) *HTTPKernel {
	r := router.New()

	// Outermost first: metrics see total latency, recovery guards
	// everything below it, and the request ID exists before anything logs.
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.OpenCORSOptions()))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.Error(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	r.Get("/metrics", "metrics", metrics.Handler())

	for _, fn := range register {
		fn(r)
	}
	return &HTTPKernel{router: r}
}

func (k *HTTPKernel) Handler() http.Handler { return k.router.Handler() }

// Routes lists everything mounted on the kernel.
func (k *HTTPKernel) Routes() []router.RouteInfo { return k.router.Routes() }
