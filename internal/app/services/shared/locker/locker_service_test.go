package locker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryRedis struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemoryRedis() *memoryRedis {
	return &memoryRedis{data: map[string]string{}}
}

func (m *memoryRedis) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memoryRedis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return m.SetRaw(ctx, key, raw, exp)
}

func (m *memoryRedis) SetRaw(_ context.Context, key string, value []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = string(value)
	return nil
}

func (m *memoryRedis) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key], nil
}

func (m *memoryRedis) TrySetNX(_ context.Context, key string, value interface{}, _ time.Duration) (bool, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.data[key]; exists {
		return false, nil
	}
	m.data[key] = string(raw)
	return true, nil
}

func (m *memoryRedis) DeleteIfEqual(_ context.Context, key string, value interface{}) (bool, bool, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return false, false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	current, exists := m.data[key]
	if !exists {
		return false, false, nil
	}
	if current != string(raw) {
		return false, true, nil
	}
	delete(m.data, key)
	return true, true, nil
}

func TestLockService(t *testing.T) {
	ctx := context.Background()

	t.Run("Second Lock Is Refused Until Unlock", func(t *testing.T) {
		locker := NewLockService(newMemoryRedis(), zap.NewNop())

		ok, value, err := locker.TryLock(ctx, "k", time.Minute)
		require.NoError(t, err)
		require.True(t, ok)

		ok, _, err = locker.TryLock(ctx, "k", time.Minute)
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, locker.Unlock(ctx, "k", value))

		ok, _, err = locker.TryLock(ctx, "k", time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Foreign Value Cannot Unlock", func(t *testing.T) {
		locker := NewLockService(newMemoryRedis(), zap.NewNop())

		_, _, err := locker.TryLock(ctx, "k", time.Minute)
		require.NoError(t, err)

		assert.Error(t, locker.Unlock(ctx, "k", "someone-else"))
	})

	t.Run("Unlock Of Missing Key Is Noop", func(t *testing.T) {
		locker := NewLockService(newMemoryRedis(), zap.NewNop())

		assert.NoError(t, locker.Unlock(ctx, "absent", "v"))
	})
}
