package redis

import (
	"adhd-intake-service/internal/app/contracts"
	"adhd-intake-service/internal/pkg/exceptions"
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

var deleteIfEqualScript = redis.NewScript(`
local current = redis.call("GET", KEYS[1])
if not current then
	return 0
end
if current == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return -1
`)

type redisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) contracts.RedisRepository {
	return &redisRepository{client: client}
}

func (r *redisRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}

// Set stores value as JSON.
func (r *redisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	return r.SetRaw(ctx, key, jsonValue, exp)
}

// SetRaw stores value as is, for payloads that are already encoded.
func (r *redisRepository) SetRaw(ctx context.Context, key string, value []byte, exp time.Duration) error {
	err := r.client.Set(ctx, key, value, exp).Err()
	if err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

// Get returns an empty string without error when the key does not exist.
func (r *redisRepository) Get(ctx context.Context, key string) (string, error) {
	data, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	} else if err != nil {
		return "", exceptions.ErrRedisGetNoData(err, key)
	}
	return data, nil
}

func (r *redisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return false, exceptions.ErrCannotMarshalJSON(err)
	}

	acquired, err := r.client.SetNX(ctx, key, jsonValue, exp).Result()
	if err != nil {
		return false, exceptions.ErrRedisSet(err)
	}
	return acquired, nil
}

func (r *redisRepository) DeleteIfEqual(ctx context.Context, key string, value interface{}) (bool, bool, error) {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return false, false, exceptions.ErrCannotMarshalJSON(err)
	}

	result, err := deleteIfEqualScript.Run(ctx, r.client, []string{key}, jsonValue).Int64()
	if err != nil {
		return false, false, exceptions.ErrRedisDelete(err)
	}
	return result > 0, result != 0, nil
}
