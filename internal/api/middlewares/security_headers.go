package middlewares

import "net/http"

func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-DNS-Prefetch-Control", "off")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Referrer-Policy", "no-referrer")
		// Responses carry PIN verdicts; never let them be cached.
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")

		// HSTS is only meaningful over HTTPS
		if r.TLS != nil {
			w.Header().Set("Strict-Transport-Security", "max-age=63072000; includeSubDomains; preload")
		}

		// JSON-only API, no assets
		w.Header().Set("Content-Security-Policy", "default-src 'self'")

		w.Header().Set("Server", "")

		next.ServeHTTP(w, r)
	})
}
