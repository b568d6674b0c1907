package audit

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps checks in memory. Used in tests and when the service
// runs without a DATABASE_URL.
type MemoryStore struct {
	mu     sync.Mutex
	nextID int64
	checks []Check
}

func NewMemory() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

func (m *MemoryStore) Record(_ context.Context, c Check) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.ID = m.nextID
	m.nextID++
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	m.checks = append(m.checks, c)
	return nil
}

func (m *MemoryStore) Stats(_ context.Context) (Stats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var st Stats
	for _, c := range m.checks {
		st.Total++
		if c.Strength == "WEAK" {
			st.Weak++
		} else {
			st.Strong++
		}
		if c.PINLength == 4 {
			st.Len4++
		} else {
			st.Len6++
		}
	}
	return st, nil
}

// Checks returns a copy of everything recorded so far.
func (m *MemoryStore) Checks() []Check {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Check, len(m.checks))
	copy(out, m.checks)
	return out
}
