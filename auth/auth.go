// Package auth holds the shared service-token middleware. Every mutating
// surface sits behind it; health endpoints stay open for probes.
package auth

import (
	"net/http"
	"strings"
)

// Middleware rejects requests that do not carry the expected bearer token.
// An empty token disables the check entirely (local development).
func Middleware(token string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token == "" || r.URL.Path == "/health" {
			next.ServeHTTP(w, r)
			return
		}

		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") || strings.TrimPrefix(header, "Bearer ") != token {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
