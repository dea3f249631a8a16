package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/abhaya_command_center/internal/dashboard"
	"github.com/shenikar/abhaya_command_center/internal/service"
)

// MemorySessionStore хранит сессии дашборда в памяти процесса
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]dashboard.State
}

func NewMemorySessionStore() service.SessionStore {
	return &MemorySessionStore{sessions: make(map[string]dashboard.State)}
}

func (s *MemorySessionStore) Get(_ context.Context, id string) (*dashboard.State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, service.ErrSessionNotFound)
	}
	// Возвращаем копию, чтобы изменения применялись только через Save
	return &state, nil
}

func (s *MemorySessionStore) Save(_ context.Context, state *dashboard.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[state.SessionID] = *state
	return nil
}

func (s *MemorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// RedisSessionStore хранит сессии в Redis с TTL, продлеваемым при каждом сохранении
type RedisSessionStore struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) service.SessionStore {
	return &RedisSessionStore{redisClient: client, ttl: ttl}
}

func sessionKey(id string) string {
	return fmt.Sprintf("dashboard_session:%s", id)
}

// Get пытается получить сессию из Redis
func (s *RedisSessionStore) Get(ctx context.Context, id string) (*dashboard.State, error) {
	val, err := s.redisClient.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("session %s: %w", id, service.ErrSessionNotFound)
		}
		return nil, fmt.Errorf("failed to get session from redis: %w", err)
	}

	state := &dashboard.State{}
	if err := json.Unmarshal(val, state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return state, nil
}

// Save сохраняет сессию в Redis
func (s *RedisSessionStore) Save(ctx context.Context, state *dashboard.State) error {
	val, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.redisClient.Set(ctx, sessionKey(state.SessionID), val, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session to redis: %w", err)
	}
	return nil
}

// Delete удаляет сессию из Redis
func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	if err := s.redisClient.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete session from redis: %w", err)
	}
	return nil
}
