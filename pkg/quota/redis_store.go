package quota

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix = "quota:"

	// Records only matter for the current day; 48h covers every timezone
	// skew between writer and reader before Redis evicts the key.
	redisTTL = 48 * time.Hour
)

type redisStore struct {
	client *redis.Client
}

// NewRedisStore returns a Store backed by Redis. Keys expire on their own,
// so stale counters never accumulate.
func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func (s *redisStore) Get(ctx context.Context, key string) (Usage, error) {
	raw, err := s.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return Usage{}, nil
	}
	if err != nil {
		return Usage{}, err
	}

	var usage Usage
	if err := json.Unmarshal(raw, &usage); err != nil {
		// A corrupt record is indistinguishable from no record; resetting
		// the counter is the safe direction for an advisory quota.
		return Usage{}, nil
	}
	return usage, nil
}

func (s *redisStore) Save(ctx context.Context, key string, usage Usage) error {
	raw, err := json.Marshal(usage)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, redisKeyPrefix+key, raw, redisTTL).Err()
}
