package middlewares

import (
	"net/http"
	"os"
	"strconv"
)

func BodySizeLimit(next http.Handler) http.Handler {
	// Check requests are tiny JSON documents; 64KB is generous.
	limit := int64(64 * 1024)

	if envLimit := os.Getenv("MAX_BODY_SIZE"); envLimit != "" {
		if parsed, err := strconv.ParseInt(envLimit, 10, 64); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
		}
		next.ServeHTTP(w, r)
	})
}
