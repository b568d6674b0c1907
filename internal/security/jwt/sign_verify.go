package jwtutil

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var cfg = LoadConfig()

// SignAdmin returns (tokenString, jti) for an admin access token.
func SignAdmin(subject string, ttl time.Duration) (string, string, error) {
	jti, err := randJTI()
	if err != nil {
		return "", "", err
	}
	claims := NewAdminClaims(subject, jti, ttl)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(cfg.Secret)
	return s, jti, err
}

// ParseAdmin verifies HS256 signature and leeway and requires the admin role.
func ParseAdmin(tokenStr string) (*AdminClaims, error) {
	parser := jwt.NewParser(jwt.WithLeeway(cfg.ClockSkew), jwt.WithValidMethods([]string{"HS256"}))
	token, err := parser.ParseWithClaims(tokenStr, &AdminClaims{}, func(t *jwt.Token) (interface{}, error) {
		return cfg.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*AdminClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Role != "admin" {
		return nil, errors.New("not an admin token")
	}
	return claims, nil
}

func randJTI() (string, error) {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(b[:]), nil
}

// DefaultAccessTTL reads AUTH_ACCESS_TTL (e.g. "15m"), defaulting to 15m.
func DefaultAccessTTL() time.Duration {
	if v := parseDuration("AUTH_ACCESS_TTL", "15m"); v > 0 {
		return v
	}
	return 15 * time.Minute
}

func parseDuration(key, def string) time.Duration {
	s := def
	if v := os.Getenv(key); v != "" {
		s = v
	}
	d, _ := time.ParseDuration(s)
	return d
}
