package draft

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pusdatin-umc/helpdesk-service/internal/domain"
)

// RedisStore keeps drafts as JSON values in Redis.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore builds a store. A zero ttl keeps drafts until cleared or evicted.
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) Save(ctx context.Context, id string, d domain.TicketDraft) error {
	if !ValidID(id) {
		return ErrInvalidID
	}
	b, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, Key(id), b, s.ttl).Err()
}

func (s *RedisStore) Load(ctx context.Context, id string) (*domain.TicketDraft, error) {
	if !ValidID(id) {
		return nil, ErrInvalidID
	}
	b, err := s.rdb.Get(ctx, Key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var d domain.TicketDraft
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *RedisStore) Clear(ctx context.Context, id string) error {
	if !ValidID(id) {
		return ErrInvalidID
	}
	return s.rdb.Del(ctx, Key(id)).Err()
}
