package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vidaisolutions/VIDAI-Chatbot-AI/internal/booking"
)

const redisKeyPrefix = "chat_session:"

// RedisStore keeps sessions in Redis so chat instances can share them.
type RedisStore struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewRedisStore creates a Redis-backed store. ttl <= 0 defaults to 30m.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if client == nil {
		panic("session: redis client required")
	}
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &RedisStore{redis: client, ttl: ttl}
}

func redisKey(id string) string {
	return redisKeyPrefix + id
}

// Get loads a session by ID.
func (r *RedisStore) Get(ctx context.Context, id string) (*booking.Session, error) {
	data, err := r.redis.Get(ctx, redisKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("session: load %s: %w", id, err)
	}

	var s booking.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("session: decode %s: %w", id, err)
	}
	if s.Answers == nil {
		s.Answers = make(booking.Answers)
	}
	return &s, nil
}

// Save stores the session and refreshes its TTL.
func (r *RedisStore) Save(ctx context.Context, s *booking.Session) error {
	if s == nil || s.ID == "" {
		return errors.New("session: session with ID required")
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("session: encode %s: %w", s.ID, err)
	}
	if err := r.redis.Set(ctx, redisKey(s.ID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("session: save %s: %w", s.ID, err)
	}
	return nil
}

// Delete removes the session. Deleting a missing session is not an error.
func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.redis.Del(ctx, redisKey(id)).Err(); err != nil {
		return fmt.Errorf("session: delete %s: %w", id, err)
	}
	return nil
}
