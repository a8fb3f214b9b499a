// Package observability provides tracing and metrics plumbing.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quill_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// FeedCacheLookups counts page-cache lookups for the global feed by result.
	FeedCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quill_feed_cache_lookups_total",
		Help: "Global feed page cache lookups by result (hit, miss, bypass)",
	}, []string{"result"})

	// PostsCreated counts created posts, labeled by whether they target a group.
	PostsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quill_posts_created_total",
		Help: "Total number of posts created",
	}, []string{"scope"})

	// FollowEdgeChanges counts follow/unfollow mutations.
	FollowEdgeChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quill_follow_edge_changes_total",
		Help: "Total follow edge mutations by action (follow, unfollow)",
	}, []string{"action"})
)
