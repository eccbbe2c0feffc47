package middleware

import (
	"context"
	"net/http"

	"github.com/xy-planning-network/microapp"
)

// InjectAppName stashes the name of the micro-app serving a request
// in *http.Request.Context under microapp.AppNameKey.
//
// If name is empty, NoopAdapter returns and this middleware does nothing.
func InjectAppName(name string) Adapter {
	if name == "" {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h.ServeHTTP(w, r.Clone(context.WithValue(r.Context(), microapp.AppNameKey, name)))
		})
	}
}
