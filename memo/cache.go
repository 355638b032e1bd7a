// Package memo adds a bounded memoization layer in front of URL
// normalization. Every normalizer is deterministic and idempotent, so
// caching is a pure optimization: observable behavior is identical to
// calling urlnorm directly, minus the repeated IDNA and percent-encoding
// work on hot paths.
package memo

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/JakeFAU/request-normalizer/internal/metrics"
	"github.com/JakeFAU/request-normalizer/urlnorm"
)

// DefaultMaxEntries bounds the cache when the caller passes a non-positive
// limit.
const DefaultMaxEntries = 4096

// Cache memoizes NormalizeURL results for a single fixed policy. It is safe
// for concurrent use. When the entry bound is reached the cache is reset
// wholesale; entries are cheap to recompute and a reset keeps the structure
// allocation-free on the hit path.
type Cache struct {
	policy      urlnorm.Policy
	fingerprint string
	maxEntries  int
	logger      *zap.Logger

	mu      sync.RWMutex
	entries map[string]string
}

// New creates a memoizing normalizer for the given policy. A nil logger is
// replaced with a no-op logger.
func New(policy urlnorm.Policy, maxEntries int, logger *zap.Logger) *Cache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	metrics.Init()
	return &Cache{
		policy:      policy,
		fingerprint: policy.Fingerprint(),
		maxEntries:  maxEntries,
		logger:      logger,
		entries:     make(map[string]string, maxEntries),
	}
}

// NormalizeURL returns the canonical form of raw under the cache's policy,
// computing it at most once per distinct input between resets. Entries are
// keyed on the policy fingerprint plus the raw input, the identity the
// memoized function is pure over.
func (c *Cache) NormalizeURL(raw string) string {
	key := c.fingerprint + "\x00" + raw

	c.mu.RLock()
	normalized, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		metrics.RecordMemoHit()
		return normalized
	}

	metrics.RecordMemoMiss()
	start := time.Now()
	normalized = urlnorm.NormalizeURL(raw, c.policy)
	metrics.ObserveNormalizeDuration(time.Since(start))

	c.mu.Lock()
	if len(c.entries) >= c.maxEntries {
		c.entries = make(map[string]string, c.maxEntries)
		metrics.RecordMemoReset()
		c.logger.Debug("memo cache reset",
			zap.Int("max_entries", c.maxEntries),
			zap.String("policy", c.fingerprint))
	}
	c.entries[key] = normalized
	c.mu.Unlock()
	return normalized
}

// Len reports the number of memoized entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Policy returns the policy the cache normalizes under.
func (c *Cache) Policy() urlnorm.Policy {
	return c.policy
}
