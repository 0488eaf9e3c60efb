package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store persists conversation state between turns of a session.
type Store interface {
	Load(ctx context.Context, sessionID string) (*State, error)
	Save(ctx context.Context, sessionID string, state *State) error
	Drop(ctx context.Context, sessionID string) error
}

// InProcessStore keeps sessions in a map; the default for a single
// process serving its own TUI.
type InProcessStore struct {
	mu       sync.Mutex
	window   int
	sessions map[string]*State
}

func NewInProcessStore(window int) *InProcessStore {
	return &InProcessStore{window: window, sessions: make(map[string]*State)}
}

func (s *InProcessStore) Load(_ context.Context, sessionID string) (*State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.sessions[sessionID]; ok {
		return st, nil
	}
	st := NewState(s.window)
	s.sessions[sessionID] = st
	return st, nil
}

func (s *InProcessStore) Save(context.Context, string, *State) error { return nil }

func (s *InProcessStore) Drop(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// RedisStore keeps session windows in Redis with a TTL, for deployments
// where several frontends share one assistant backend.
type RedisStore struct {
	client *redis.Client
	window int
	ttl    time.Duration
}

func NewRedisStore(ctx context.Context, url string, window int, ttl time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return &RedisStore{client: client, window: window, ttl: ttl}, nil
}

func (s *RedisStore) Load(ctx context.Context, sessionID string) (*State, error) {
	data, err := s.client.Get(ctx, key(sessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return NewState(s.window), nil
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	var st State
	if err := json.Unmarshal([]byte(data), &st); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	if st.Capacity <= 0 {
		st.Capacity = s.window
	}
	return &st, nil
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, state *State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return s.client.Set(ctx, key(sessionID), data, s.ttl).Err()
}

func (s *RedisStore) Drop(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, key(sessionID)).Err()
}

func key(sessionID string) string { return "conversation:" + sessionID }
