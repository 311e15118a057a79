package middleware

import (
	"net/http"
	"strconv"
	"strings"
)

// CORSOptions configures the CORS middleware. A "*" entry in any list
// allows everything for that dimension.
type CORSOptions struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
	MaxAge           int // seconds for preflight cache
}

// OpenCORSOptions allows any origin, method and header, with credentials.
func OpenCORSOptions() CORSOptions {
	return CORSOptions{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"*"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           600,
	}
}

// CORS returns a middleware that adds Cross-Origin Resource Sharing headers.
// Browsers reject "*" together with credentials, so wildcard origins are
// echoed back when credentials are allowed.
func CORS(opts CORSOptions) func(http.Handler) http.Handler {
	anyOrigin := contains(opts.AllowedOrigins, "*")
	anyMethod := contains(opts.AllowedMethods, "*")
	anyHeader := contains(opts.AllowedHeaders, "*")
	methods := strings.Join(opts.AllowedMethods, ", ")
	headers := strings.Join(opts.AllowedHeaders, ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			allowed := ""
			switch {
			case anyOrigin && opts.AllowCredentials:
				allowed = origin
				w.Header().Add("Vary", "Origin")
			case anyOrigin:
				allowed = "*"
			case contains(opts.AllowedOrigins, origin):
				allowed = origin
				w.Header().Add("Vary", "Origin")
			}
			if allowed == "" {
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Set("Access-Control-Allow-Origin", allowed)
			if opts.AllowCredentials {
				h.Set("Access-Control-Allow-Credentials", "true")
			}

			preflight := r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != ""
			if !preflight {
				next.ServeHTTP(w, r)
				return
			}

			if anyMethod {
				h.Set("Access-Control-Allow-Methods", r.Header.Get("Access-Control-Request-Method"))
			} else {
				h.Set("Access-Control-Allow-Methods", methods)
			}
			if anyHeader {
				if req := r.Header.Get("Access-Control-Request-Headers"); req != "" {
					h.Set("Access-Control-Allow-Headers", req)
				}
			} else {
				h.Set("Access-Control-Allow-Headers", headers)
			}
			if opts.MaxAge > 0 {
				h.Set("Access-Control-Max-Age", strconv.Itoa(opts.MaxAge))
			}
			w.WriteHeader(http.StatusNoContent)
		})
	}
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
