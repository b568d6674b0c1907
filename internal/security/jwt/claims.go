package jwtutil

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminClaims are the claims carried by admin access tokens.
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func NewAdminClaims(subject, jti string, ttl time.Duration) AdminClaims {
	now := time.Now()
	return AdminClaims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}
