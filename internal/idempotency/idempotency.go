// Package idempotency remembers which ticket a client submission key produced.
package idempotency

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ticket-submission:"

// DefaultTTL bounds how long a submission key is remembered.
const DefaultTTL = 24 * time.Hour

// Store claims keys and records the resulting ticket number.
type Store interface {
	// Claim reserves key. When the key was already claimed it returns false and the value
	// recorded for it, which is empty while the first submission is still in flight.
	Claim(ctx context.Context, key string) (bool, string, error)
	// Complete records the ticket number for a claimed key.
	Complete(ctx context.Context, key, value string) error
	// Release forgets a claim whose submission failed.
	Release(ctx context.Context, key string) error
}

// RedisStore implements Store with SETNX.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore builds a Redis-backed store.
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) Claim(ctx context.Context, key string) (bool, string, error) {
	ok, err := s.rdb.SetNX(ctx, keyPrefix+key, "", s.ttl).Result()
	if err != nil {
		return false, "", err
	}
	if ok {
		return true, "", nil
	}
	value, err := s.rdb.Get(ctx, keyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return false, "", nil
	}
	return false, value, err
}

func (s *RedisStore) Complete(ctx context.Context, key, value string) error {
	return s.rdb.Set(ctx, keyPrefix+key, value, s.ttl).Err()
}

func (s *RedisStore) Release(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, keyPrefix+key).Err()
}

type memoryEntry struct {
	value   string
	expires time.Time
}

// MemoryStore implements Store in process memory.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
}

// NewMemoryStore builds an in-memory store.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{ttl: ttl, now: time.Now, entries: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Claim(_ context.Context, key string) (bool, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	if e, ok := s.entries[key]; ok && now.Before(e.expires) {
		return false, e.value, nil
	}
	s.entries[strings.Clone(key)] = memoryEntry{expires: now.Add(s.ttl)}
	return true, "", nil
}

func (s *MemoryStore) Complete(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[strings.Clone(key)] = memoryEntry{value: strings.Clone(value), expires: s.now().Add(s.ttl)}
	return nil
}

func (s *MemoryStore) Release(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}
