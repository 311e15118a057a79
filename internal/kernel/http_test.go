package kernel_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/foodshop/internal/kernel"
	"github.com/shashiranjanraj/foodshop/pkg/reqid"
	"github.com/shashiranjanraj/foodshop/pkg/router"
)

func newKernel() *kernel.HTTPKernel {
	return kernel.NewHTTPKernel(func(r *router.Router) {
		r.Get("/boom", "boom", func(http.ResponseWriter, *http.Request) { panic("kaput") })
		r.Get("/ping", "ping", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("pong")) })
	})
}

func TestKernelServesRoutesWithRequestID(t *testing.T) {
	rec := httptest.NewRecorder()
	newKernel().Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(reqid.Header))
}

func TestKernelJSONNotFoundAndMethod(t *testing.T) {
	h := newKernel().Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Not Found"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/ping", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"detail":"Method Not Allowed"}`, rec.Body.String())
}

func TestKernelRecoversPanics(t *testing.T) {
	rec := httptest.NewRecorder()
	newKernel().Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"detail":"Internal Server Error"}`, rec.Body.String())
}

func TestKernelCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "GET")

	rec := httptest.NewRecorder()
	newKernel().Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestKernelMountsMetrics(t *testing.T) {
	k := newKernel()

	rec := httptest.NewRecorder()
	k.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "foodshop_http_requests_in_flight")

	assert.Contains(t, k.Routes(), router.RouteInfo{Method: http.MethodGet, Path: "/metrics", Name: "metrics"})
}
