// Package audit records the outcome of MPIN checks. The PIN itself is never
// stored — only its length, the verdict and the triggered reason codes.
package audit

import (
	"context"
	"time"
)

// Check is one recorded classification outcome.
type Check struct {
	ID        int64
	PINLength int
	Strength  string
	Reasons   []string
	RequestID string
	CreatedAt time.Time
}

// Stats are the aggregates served on the admin surface.
type Stats struct {
	Total  int64 `json:"total"`
	Weak   int64 `json:"weak"`
	Strong int64 `json:"strong"`
	Len4   int64 `json:"len4"`
	Len6   int64 `json:"len6"`
}

// Store persists check outcomes and serves aggregates.
type Store interface {
	Record(ctx context.Context, c Check) error
	Stats(ctx context.Context) (Stats, error)
}
