package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Delete(ctx context.Context, key string) error
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	SetRaw(ctx context.Context, key string, value []byte, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
	// DeleteIfEqual removes key only while it still holds value. found is
	// false when the key no longer exists.
	DeleteIfEqual(ctx context.Context, key string, value interface{}) (deleted, found bool, err error)
}
