package services

import (
	"context"
	"fmt"
	"time"
)

// SessionCache tracks issued session tokens so they can be revoked before
// their JWT expiry.
type SessionCache interface {
	SetSession(ctx context.Context, tokenID, userID string) error
	GetSession(ctx context.Context, tokenID string) (string, error)
	InvalidateSession(ctx context.Context, tokenID string) error
}

type RedisClient interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, duration time.Duration) error
	Del(ctx context.Context, keys ...string) error
	Keys(ctx context.Context, pattern string) ([]string, error)
}

type redisSessionCache struct {
	client     RedisClient
	sessionTTL time.Duration
}

func NewRedisSessionCache(client RedisClient, sessionTTL time.Duration) *redisSessionCache {
	return &redisSessionCache{
		client:     client,
		sessionTTL: sessionTTL,
	}
}

func (s *redisSessionCache) SetSession(ctx context.Context, tokenID, userID string) error {
	return s.client.Set(ctx, s.key(tokenID), userID, s.sessionTTL)
}

func (s *redisSessionCache) GetSession(ctx context.Context, tokenID string) (string, error) {
	return s.client.Get(ctx, s.key(tokenID))
}

func (s *redisSessionCache) InvalidateSession(ctx context.Context, tokenID string) error {
	return s.client.Del(ctx, s.key(tokenID))
}

func (s *redisSessionCache) key(tokenID string) string {
	return fmt.Sprintf("session:%s", tokenID)
}
