package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
)

// APIKeyMiddleware guards the admin route group. Role-level
// authorization lives in the gateway; this is the service-side gate.
func APIKeyMiddleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get("X-API-Key")
			if key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"detail": "invalid credentials"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
