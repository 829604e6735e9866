package repository

import (
	"context"
	"fmt"
	"time"

	"language_quiz_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// QuizCache stores rendered student views of quizzes. Misses and cache
// failures are never errors for the caller.
type QuizCache interface {
	Get(ctx context.Context, quizID uint) ([]byte, bool)
	Set(ctx context.Context, quizID uint, payload []byte)
	Invalidate(ctx context.Context, quizID uint)
	Ping(ctx context.Context) error
}

type RedisQuizCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisQuizCache(client *redis.Client, ttl time.Duration) *RedisQuizCache {
	return &RedisQuizCache{client: client, ttl: ttl}
}

func studentViewKey(quizID uint) string {
	return fmt.Sprintf("quiz:student:%d", quizID)
}

func (c *RedisQuizCache) Get(ctx context.Context, quizID uint) ([]byte, bool) {
	payload, err := c.client.Get(ctx, studentViewKey(quizID)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		logger.Log.Warn("quiz cache read failed", zap.Uint("quiz_id", quizID), zap.Error(err))
		return nil, false
	}
	return payload, true
}

func (c *RedisQuizCache) Set(ctx context.Context, quizID uint, payload []byte) {
	if err := c.client.Set(ctx, studentViewKey(quizID), payload, c.ttl).Err(); err != nil {
		logger.Log.Warn("quiz cache write failed", zap.Uint("quiz_id", quizID), zap.Error(err))
	}
}

func (c *RedisQuizCache) Invalidate(ctx context.Context, quizID uint) {
	if err := c.client.Del(ctx, studentViewKey(quizID)).Err(); err != nil {
		logger.Log.Warn("quiz cache invalidation failed", zap.Uint("quiz_id", quizID), zap.Error(err))
	}
}

func (c *RedisQuizCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// NopQuizCache is used when redis is disabled.
type NopQuizCache struct{}

func (NopQuizCache) Get(context.Context, uint) ([]byte, bool) { return nil, false }
func (NopQuizCache) Set(context.Context, uint, []byte)        {}
func (NopQuizCache) Invalidate(context.Context, uint)         {}
func (NopQuizCache) Ping(context.Context) error               { return nil }
