package middlewares

import (
	"errors"
	"net/http"
	"strings"

	jwtutil "github.com/0xabhi/mpin-api/internal/security/jwt"
)

// RequireAdmin verifies a Bearer admin token. The token is self-contained
// (HS256, role claim); there is no user table to consult.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("Authorization")
		if raw == "" {
			http.Error(w, "missing Authorization header", http.StatusUnauthorized)
			return
		}
		tokenStr, err := bearer(raw)
		if err != nil {
			http.Error(w, "invalid Authorization header", http.StatusUnauthorized)
			return
		}
		if _, err := jwtutil.ParseAdmin(tokenStr); err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearer(h string) (string, error) {
	if !strings.HasPrefix(h, "Bearer ") && !strings.HasPrefix(h, "bearer ") {
		return "", errors.New("no bearer")
	}
	return strings.TrimSpace(h[len("Bearer "):]), nil
}
