// internal/quota/redis.go
package quota

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps quota marks in Redis under <prefix>:<clientID>.
// A TTL of zero days keeps marks forever.
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

func NewRedisStore(client *redis.Client, keyPrefix string, ttlDays int) *RedisStore {
	return &RedisStore{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       time.Duration(ttlDays) * 24 * time.Hour,
	}
}

func (s *RedisStore) key(clientID string) string {
	return fmt.Sprintf("%s:%s", s.keyPrefix, clientID)
}

func (s *RedisStore) Used(ctx context.Context, clientID string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(clientID)).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrQuotaCheckFailed, err)
	}
	return n > 0, nil
}

func (s *RedisStore) MarkUsed(ctx context.Context, clientID string) error {
	usedAt := time.Now().UTC().Format(time.RFC3339)
	if err := s.client.Set(ctx, s.key(clientID), usedAt, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrQuotaCheckFailed, err)
	}
	return nil
}
