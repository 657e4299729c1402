package corpus

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"passwordStrengthBackend/internal/core/domain"
)

type setReader interface {
	SMembers(ctx context.Context, key string) *redis.StringSliceCmd
}

// RedisSource reads digests from a Redis set.
type RedisSource struct {
	client setReader
	key    string
	close  func() error
}

func NewRedisSource(client setReader, key string) *RedisSource {
	return &RedisSource{client: client, key: key}
}

func NewRedisSourceFromURL(url, key string) (*RedisSource, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opt)
	return &RedisSource{client: client, key: key, close: client.Close}, nil
}

func (s *RedisSource) Name() domain.CorpusSource {
	return domain.CorpusRedis
}

func (s *RedisSource) Load(ctx context.Context) ([]string, error) {
	members, err := s.client.SMembers(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("smembers %s: %w", s.key, err)
	}
	return members, nil
}

func (s *RedisSource) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}
