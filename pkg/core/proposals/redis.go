package proposals

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps pending proposals in Redis so multiple engine instances
// share the same draws. Expiry is handled by Redis key TTLs.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore wraps an existing Redis client. A non-positive ttl falls
// back to DefaultTTL.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Put(ctx context.Context, p Proposal) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode proposal: %w", err)
	}

	if err := s.client.Set(ctx, proposalKey(p.TripID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store proposal: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, tripID string) (Proposal, bool, error) {
	payload, err := s.client.Get(ctx, proposalKey(tripID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Proposal{}, false, nil
	}
	if err != nil {
		return Proposal{}, false, fmt.Errorf("failed to fetch proposal: %w", err)
	}

	var p Proposal
	if err := json.Unmarshal(payload, &p); err != nil {
		return Proposal{}, false, fmt.Errorf("failed to decode proposal: %w", err)
	}
	return p, true, nil
}

func (s *RedisStore) Delete(ctx context.Context, tripID string) error {
	if err := s.client.Del(ctx, proposalKey(tripID)).Err(); err != nil {
		return fmt.Errorf("failed to delete proposal: %w", err)
	}
	return nil
}

// SweepExpired is a no-op, Redis expires proposal keys itself
func (s *RedisStore) SweepExpired(context.Context) int {
	return 0
}

func proposalKey(tripID string) string {
	return "proposal:" + tripID
}
