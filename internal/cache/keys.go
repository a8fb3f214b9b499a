package cache

import (
	"context"
	"fmt"
)

const (
	// FeedIndexPrefix namespaces cached global-feed pages. Keys carry the raw
	// page query value so every page variant is cached separately, mirroring
	// a full-page cache keyed by URL.
	FeedIndexPrefix = "feed:index:"
)

// FeedIndexKey returns the cache key for a global-feed page request.
func FeedIndexKey(rawPage string) string {
	if rawPage == "" {
		rawPage = "1"
	}
	return fmt.Sprintf("%sp=%s", FeedIndexPrefix, rawPage)
}

// Invalidate removes a single key. Best-effort: errors are dropped because
// a stale entry expires on its own within the TTL.
func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidatePrefix removes every key under the given prefix via SCAN.
func InvalidatePrefix(ctx context.Context, prefix string) {
	if client == nil {
		return
	}
	iter := client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		client.Del(ctx, iter.Val())
	}
}

// InvalidateFeedIndex drops all cached global-feed pages. Called after any
// mutation that changes what the global feed shows.
func InvalidateFeedIndex(ctx context.Context) {
	InvalidatePrefix(ctx, FeedIndexPrefix)
}
