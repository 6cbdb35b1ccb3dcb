package persistence

import (
	"context"
	"errors"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/avlorenzana/jobtrail/pkg/apperror"
	"github.com/avlorenzana/jobtrail/pkg/logger"
)

type redisKV struct {
	client *redis.Client
	logger logger.Logger
}

func NewRedisKV(client *redis.Client, log logger.Logger) KV {
	return &redisKV{client: client, logger: log}
}

func (s *redisKV) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrKeyNotFound
		}
		return nil, apperror.NewInternal("failed to get key from Redis", err)
	}
	return value, nil
}

func (s *redisKV) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return apperror.NewInternal("failed to set key in Redis", err)
	}
	return nil
}

func (s *redisKV) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return apperror.NewInternal("failed to delete key from Redis", err)
	}
	return nil
}

func (s *redisKV) ListByPrefix(ctx context.Context, prefix string) ([][]byte, error) {
	keys := make([]string, 0)
	iter := s.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, apperror.NewInternal("failed to scan keys in Redis", err)
	}
	if len(keys) == 0 {
		return [][]byte{}, nil
	}
	sort.Strings(keys)

	raw, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, apperror.NewInternal("failed to mget keys from Redis", err)
	}

	values := make([][]byte, 0, len(raw))
	for _, v := range raw {
		// Keys can expire between SCAN and MGET.
		if v == nil {
			continue
		}
		if str, ok := v.(string); ok {
			values = append(values, []byte(str))
		}
	}
	return values, nil
}
