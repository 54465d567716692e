// Package apicors provides CORS middleware for the CMS endpoints, which
// authenticate with a bearer API key instead of cookies.
//
// With API key authentication no credentials are sent, so AllowCredentials
// stays false and the origin may be "*". Deployments that want to pin the
// CMS to the editor front end list its origins instead.
package apicors

import (
	"net/http"
	"strings"
)

const (
	allowMethods = "GET, POST, PUT, DELETE, OPTIONS"
	allowHeaders = "Authorization, Content-Type, Accept, X-Editor"
	maxAge       = "86400" // 24 hours
)

// New picks Middleware when origins is empty and MiddlewareWithOrigins
// otherwise. Blank entries are ignored.
func New(origins []string) func(http.Handler) http.Handler {
	var cleaned []string
	for _, o := range origins {
		if o = strings.TrimSpace(o); o != "" {
			cleaned = append(cleaned, o)
		}
	}
	if len(cleaned) == 0 {
		return Middleware()
	}
	return MiddlewareWithOrigins(cleaned...)
}

// Middleware returns CORS middleware that allows any origin without
// credentials and answers preflight OPTIONS requests itself.
//
// Usage in routes.go:
//
//	r.Route("/cms", func(r chi.Router) {
//	    r.Use(apicors.Middleware())
//	    r.Use(auth.APIKeyAuth(appCfg.APIKey, logger))
//	    // No CSRF middleware: bearer auth is not CSRF-vulnerable
//	})
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			setCommon(w)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// MiddlewareWithOrigins returns CORS middleware that only allows specific origins.
//
// Usage:
//
//	r.Use(apicors.MiddlewareWithOrigins("https://cms.example.in"))
func MiddlewareWithOrigins(allowedOrigins ...string) func(http.Handler) http.Handler {
	originSet := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		originSet[o] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("Vary", "Origin")
			if origin := r.Header.Get("Origin"); origin != "" {
				// Unlisted origins get no CORS headers and the browser blocks them.
				if _, allowed := originSet[origin]; allowed {
					w.Header().Set("Access-Control-Allow-Origin", origin)
				}
			}
			setCommon(w)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func setCommon(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Methods", allowMethods)
	w.Header().Set("Access-Control-Allow-Headers", allowHeaders)
	w.Header().Set("Access-Control-Max-Age", maxAge)
}
