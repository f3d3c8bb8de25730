package cache

import (
	"context"
	"time"
)

// Store is the key-value cache the read models sit behind. Implementations
// are the Redis client and an in-memory fallback for development.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
}

// MeetingOverviewKey is the cache key for a meeting's analytics overview.
func MeetingOverviewKey(meetingID string) string {
	return "meeting:overview:" + meetingID
}
