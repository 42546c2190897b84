package semantic

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache memoizes embedding vectors by content hash so re-scoring a
// near-identical CV does not recompute unchanged sections. Concurrent
// callers asking for the same key await one in-flight computation instead
// of duplicating it. Errors are never cached.
type Cache struct {
	provider Provider
	group    singleflight.Group

	mu      sync.RWMutex
	vectors map[string][]float32
}

// NewCache wraps provider with a content-hash embedding cache. The cache
// itself satisfies Provider.
func NewCache(provider Provider) *Cache {
	return &Cache{
		provider: provider,
		vectors:  make(map[string][]float32),
	}
}

// Embed returns the cached vector for text, computing it at most once per
// content hash under concurrent access.
func (c *Cache) Embed(ctx context.Context, text string) ([]float32, error) {
	key := contentKey(text)

	c.mu.RLock()
	vec, ok := c.vectors[key]
	c.mu.RUnlock()
	if ok {
		return vec, nil
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		// Re-check under the flight: a racing caller may have stored the
		// vector between our fast-path miss and this flight starting.
		c.mu.RLock()
		vec, ok := c.vectors[key]
		c.mu.RUnlock()
		if ok {
			return vec, nil
		}

		vec, err := c.provider.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.vectors[key] = vec
		c.mu.Unlock()
		return vec, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]float32), nil
}

// Len reports the number of cached vectors.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.vectors)
}

func contentKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
