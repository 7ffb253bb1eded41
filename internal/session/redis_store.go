package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "assistant:session:"

// Idle sessions expire server-side; an expired draft simply restarts the
// intake.
const sessionTTL = 30 * time.Minute

func sessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

type redisStore struct {
	rdb *redis.Client
}

// NewRedisStore backs the HTTP surface, where many sessions live across
// process restarts.
func NewRedisStore(rdb *redis.Client) Store {
	return &redisStore{rdb: rdb}
}

func (s *redisStore) Load(ctx context.Context, sessionID string) (State, error) {
	data, err := s.rdb.Get(ctx, sessionKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return State{}, nil
	}
	if err != nil {
		return State{}, fmt.Errorf("load session %s: %w", sessionID, err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		// A corrupt blob should not wedge the session forever.
		return State{}, nil
	}
	return state, nil
}

func (s *redisStore) Save(ctx context.Context, sessionID string, state State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal session %s: %w", sessionID, err)
	}
	if err := s.rdb.Set(ctx, sessionKey(sessionID), data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("save session %s: %w", sessionID, err)
	}
	return nil
}

func (s *redisStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.rdb.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("clear session %s: %w", sessionID, err)
	}
	return nil
}
