package audit

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const statsKey = "mpin:stats:v1"

// CachedStats wraps a Store with a short-TTL Redis cache for the Stats
// aggregate. Cache failures never fail a request: every error path falls
// through to the underlying store, warning once instead of spamming logs.
type CachedStats struct {
	Store

	rdb     *redis.Client
	ttl     time.Duration
	shortTO time.Duration // per cache op
	warn    sync.Once
}

func NewCachedStats(inner Store, rdb *redis.Client) *CachedStats {
	ttl := 30 * time.Second
	if v := os.Getenv("MPIN_STATS_CACHE_TTL"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			ttl = time.Duration(secs) * time.Second
		}
	}
	return &CachedStats{
		Store:   inner,
		rdb:     rdb,
		ttl:     ttl,
		shortTO: 150 * time.Millisecond,
	}
}

func (c *CachedStats) Stats(ctx context.Context) (Stats, error) {
	if st, ok := c.get(ctx); ok {
		return st, nil
	}
	st, err := c.Store.Stats(ctx)
	if err != nil {
		return Stats{}, err
	}
	c.set(ctx, st)
	return st, nil
}

func (c *CachedStats) get(ctx context.Context) (Stats, bool) {
	ctx, cancel := context.WithTimeout(ctx, c.shortTO)
	defer cancel()

	raw, err := c.rdb.Get(ctx, statsKey).Bytes()
	if err == redis.Nil {
		return Stats{}, false
	}
	if err != nil {
		c.warnOnce(err)
		return Stats{}, false
	}
	var st Stats
	if err := json.Unmarshal(raw, &st); err != nil {
		return Stats{}, false
	}
	return st, true
}

func (c *CachedStats) set(ctx context.Context, st Stats) {
	ctx, cancel := context.WithTimeout(ctx, c.shortTO)
	defer cancel()

	raw, err := json.Marshal(st)
	if err != nil {
		return
	}
	if err := c.rdb.SetEx(ctx, statsKey, raw, c.ttl).Err(); err != nil {
		c.warnOnce(err)
	}
}

func (c *CachedStats) warnOnce(err error) {
	c.warn.Do(func() {
		log.Printf("[stats-cache] redis unavailable, serving from store: %v", err)
	})
}
