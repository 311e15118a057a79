// Package ctx provides a request context for handlers.
//
// Instead of accepting (http.ResponseWriter, *http.Request), a handler
// receives a single *Context with helpers for binding and responding:
//
//	func (c *ProductController) Index(x *ctx.Context) {
//	    products, err := c.service.List(x.Context(), x.Query("category"))
//	    if err != nil {
//	        x.ServerError(err)
//	        return
//	    }
//	    x.OK(products)
//	}
//
//	router.Get("/api/products", "products.index", ctx.Wrap(ctrl.Index))
package ctx

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/foodshop/pkg/bind"
	"github.com/shashiranjanraj/foodshop/pkg/logger"
	"github.com/shashiranjanraj/foodshop/pkg/response"
	"github.com/shashiranjanraj/foodshop/pkg/validate"
)

// maxDetail bounds the error text echoed back for unexpected failures.
const maxDetail = 200

// HandlerFunc is the context-aware handler signature.
type HandlerFunc func(c *Context)

// Wrap converts a HandlerFunc to a standard http.HandlerFunc.
func Wrap(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := acquire(w, r)
		defer release(c)
		h(c)
	}
}

// ─── Context ──────────────────────────────────────────────────────────────────

// Context wraps a request/response pair.
type Context struct {
	W      http.ResponseWriter
	R      *http.Request
	status int // written status code (0 = not written yet)
}

// pool recycles Context objects to reduce GC pressure.
var pool = sync.Pool{
	New: func() any { return &Context{} },
}

func acquire(w http.ResponseWriter, r *http.Request) *Context {
	c := pool.Get().(*Context)
	c.W = w
	c.R = r
	c.status = 0
	return c
}

func release(c *Context) {
	c.W = nil
	c.R = nil
	pool.Put(c)
}

// ─── Request helpers ──────────────────────────────────────────────────────────

// Param returns a URL path parameter.
func (c *Context) Param(key string) string {
	return chi.URLParam(c.R, key)
}

// Query returns a query-string value. Returns "" if not present.
func (c *Context) Query(key string) string {
	return c.R.URL.Query().Get(key)
}

// Context returns the underlying request context.
func (c *Context) Context() context.Context { return c.R.Context() }

// ─── Binding ──────────────────────────────────────────────────────────────────

// BindJSON decodes the JSON body into dest and runs validation.
// On a decode error it sends a 400, on validation failure a 422, and
// returns false in both cases. The handler should return immediately.
//
//	var input models.ProductInput
//	if !c.BindJSON(&input) {
//	    return
//	}
func (c *Context) BindJSON(dest any) bool {
	errs, err := bind.JSON(c.R, dest)
	if err != nil {
		c.Error(http.StatusBadRequest, err.Error())
		return false
	}
	if validate.HasErrors(errs) {
		c.ValidationError(errs)
		return false
	}
	return true
}

// ─── Response helpers ─────────────────────────────────────────────────────────

// JSON writes a JSON response with the given status code.
func (c *Context) JSON(code int, v any) {
	c.status = code
	response.JSON(c.W, code, v)
}

// OK sends v with status 200.
func (c *Context) OK(v any) {
	c.JSON(http.StatusOK, v)
}

// Error sends {"detail": message} with the given status.
func (c *Context) Error(code int, message string) {
	c.JSON(code, response.ErrorBody{Detail: message})
}

// ValidationError sends a 422 with field-level errors.
func (c *Context) ValidationError(errs validate.Errors) {
	c.JSON(http.StatusUnprocessableEntity, response.ErrorBody{
		Detail: "Validation failed",
		Errors: errs,
	})
}

// ServerError logs err and sends a 500 carrying its truncated text. A
// validate.Errors value is answered as a 422 instead.
func (c *Context) ServerError(err error) {
	var verrs validate.Errors
	if errors.As(err, &verrs) {
		c.ValidationError(verrs)
		return
	}
	logger.WithCtx(c.Context()).Error("request failed",
		"method", c.R.Method,
		"path", c.R.URL.Path,
		"error", err.Error(),
	)
	c.Error(http.StatusInternalServerError, response.Truncate(err.Error(), maxDetail))
}

// WrittenStatus returns the status written so far, or 0.
func (c *Context) WrittenStatus() int { return c.status }
