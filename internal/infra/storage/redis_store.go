package storage

import (
	"context"
	"log/slog"
	"time"

	"pos/config"
	"pos/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const redisPingTimeout = 5 * time.Second

// redisStore keeps each key under a shared prefix so several kiosks can share one redis
type redisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore connects to redis. An unreachable server is logged, not fatal:
// reads then fail and the session starts logged out.
func NewRedisStore(cfg config.RedisConfig, logger *slog.Logger) repository.KeyValueStore {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("Redis token storage unreachable",
			slog.String("addr", cfg.Addr),
			slog.Any("error", err),
		)
	}

	return newRedisStoreWithClient(client, cfg.Prefix)
}

func newRedisStoreWithClient(client *redis.Client, prefix string) *redisStore {
	return &redisStore{client: client, prefix: prefix}
}

func (s *redisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(repository.ErrStorageUnavailable, "redis get %s: %v", key, err)
	}

	return value, true, nil
}

func (s *redisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return errors.Wrapf(repository.ErrStorageUnavailable, "redis set %s: %v", key, err)
	}

	return nil
}

func (s *redisStore) Delete(ctx context.Context, keys ...string) error {
	prefixed := make([]string, 0, len(keys))
	for _, key := range keys {
		prefixed = append(prefixed, s.prefix+key)
	}

	if err := s.client.Del(ctx, prefixed...).Err(); err != nil {
		return errors.Wrapf(repository.ErrStorageUnavailable, "redis del: %v", err)
	}

	return nil
}

func (s *redisStore) Close() error {
	return errors.WithStack(s.client.Close())
}
