package translation

import (
	"adhd-intake-service/internal/app/config"
	"adhd-intake-service/internal/app/models"
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type memoryCache struct {
	mu   sync.Mutex
	data map[string]string
}

func (m *memoryCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memoryCache) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return nil
}

func (m *memoryCache) SetRaw(_ context.Context, key string, value []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = string(value)
	return nil
}

func (m *memoryCache) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key], nil
}

func (m *memoryCache) TrySetNX(_ context.Context, _ string, _ interface{}, _ time.Duration) (bool, error) {
	return true, nil
}

func (m *memoryCache) DeleteIfEqual(_ context.Context, _ string, _ interface{}) (bool, bool, error) {
	return false, false, nil
}

func newTestTranslator(baseURL string, cache *memoryCache) *googleTranslator {
	cfg := &config.InternalConfig{
		Translation: config.AppTranslation{
			BaseUrl:                 baseURL,
			RequestTimeout:          time.Second,
			RequestsPerSecond:       100,
			Burst:                   10,
			CacheExpiredTimeInHours: 1,
		},
	}
	var translator *googleTranslator
	if cache == nil {
		translator = NewGoogleTranslator(cfg, nil, zap.NewNop()).(*googleTranslator)
	} else {
		translator = NewGoogleTranslator(cfg, cache, zap.NewNop()).(*googleTranslator)
	}
	return translator
}

func TestGoogleTranslator(t *testing.T) {
	ctx := context.Background()

	t.Run("Translates And Joins Segments", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/translate_a/single", r.URL.Path)
			assert.Equal(t, "fr", r.URL.Query().Get("tl"))
			assert.Equal(t, "Never. Often", r.URL.Query().Get("q"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[[["Jamais. ","Never. ",null,null,1],["Souvent","Often",null,null,1]],null,"en"]`))
		}))
		defer server.Close()

		result := newTestTranslator(server.URL, nil).Translate(ctx, "Never. Often", models.LanguageFrench)

		assert.Equal(t, "Jamais. Souvent", result)
	})

	t.Run("English Short Circuits", func(t *testing.T) {
		var hits int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&hits, 1)
		}))
		defer server.Close()

		result := newTestTranslator(server.URL, nil).Translate(ctx, "Never", models.LanguageEnglish)

		assert.Equal(t, "Never", result)
		assert.Zero(t, atomic.LoadInt32(&hits))
	})

	t.Run("Falls Back On HTTP Failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		result := newTestTranslator(server.URL, nil).Translate(ctx, "Consent", models.LanguageArabic)

		assert.Equal(t, "Consent", result)
	})

	t.Run("Falls Back On Malformed Body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"error":"nope"}`))
		}))
		defer server.Close()

		result := newTestTranslator(server.URL, nil).Translate(ctx, "Consent", models.LanguageArabic)

		assert.Equal(t, "Consent", result)
	})

	t.Run("Falls Back When Unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		result := newTestTranslator(server.URL, nil).Translate(ctx, "Consent", models.LanguageFrench)

		assert.Equal(t, "Consent", result)
	})

	t.Run("Second Lookup Served From Cache", func(t *testing.T) {
		var hits int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&hits, 1)
			w.Write([]byte(`[[["Oui","Yes",null,null,1]]]`))
		}))
		defer server.Close()
		translator := newTestTranslator(server.URL, &memoryCache{data: map[string]string{}})

		first := translator.Translate(ctx, "Yes", models.LanguageFrench)
		second := translator.Translate(ctx, "Yes", models.LanguageFrench)

		assert.Equal(t, "Oui", first)
		assert.Equal(t, "Oui", second)
		assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
	})

	t.Run("Failures Are Not Cached", func(t *testing.T) {
		cache := &memoryCache{data: map[string]string{}}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		newTestTranslator(server.URL, cache).Translate(ctx, "Yes", models.LanguageFrench)

		assert.Empty(t, cache.data)
	})
}

func TestPassthroughTranslator(t *testing.T) {
	assert.Equal(t, "Email", NewPassthroughTranslator().Translate(context.Background(), "Email", models.LanguageArabic))
}
