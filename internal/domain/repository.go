package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations.
// Implementations store values as JSON, so Get may hand back a decoded
// map rather than the original type.
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
