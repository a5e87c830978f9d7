package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"velocity-model-service/internal/platform/obs"
	"velocity-model-service/internal/ports"
)

// RedisBibrefCache is a read-through cache in front of a BibrefResolver.
// Bibref rows change only on re-import, so a short TTL is plenty. An empty
// bibref is a valid resolution and is cached like any other value; a Redis
// outage degrades to the inner resolver instead of failing the request.
type RedisBibrefCache struct {
	Client *redis.Client
	Inner  ports.BibrefResolver
	TTL    time.Duration
}

func NewRedisBibrefCache(client *redis.Client, inner ports.BibrefResolver, ttl time.Duration) *RedisBibrefCache {
	return &RedisBibrefCache{Client: client, Inner: inner, TTL: ttl}
}

func bibrefKey(author string) string {
	return "bibref:" + strings.ToLower(strings.TrimSpace(author))
}

// Bibref resolves through the cache, falling back to the inner resolver on
// miss or Redis failure.
func (c *RedisBibrefCache) Bibref(ctx context.Context, author string) (_ string, err error) {
	defer obs.Time(ctx, "bibref.cache.Get")(&err)

	if c.Inner == nil {
		return "", errors.New("bibref cache: inner resolver is nil")
	}
	if c.Client == nil {
		return c.Inner.Bibref(ctx, author)
	}

	key := bibrefKey(author)

	cached, err := c.Client.Get(ctx, key).Result()
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, redis.Nil) {
		log.Printf("bibref cache: get key=%q err=%v (falling back to store)", key, err)
	}

	bibref, err := c.Inner.Bibref(ctx, author)
	if err != nil {
		return "", fmt.Errorf("bibref cache: inner lookup author=%q: %w", author, err)
	}

	if err := c.Client.Set(ctx, key, bibref, c.TTL).Err(); err != nil {
		log.Printf("bibref cache: set key=%q err=%v", key, err)
	}

	return bibref, nil
}
