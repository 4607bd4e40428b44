package translation

import (
	"adhd-intake-service/internal/app/config"
	"adhd-intake-service/internal/app/contracts"
	"adhd-intake-service/internal/app/models"
	"adhd-intake-service/internal/pkg/constvars"
	"context"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/time/rate"
)

const sourceLanguage = "en"

type googleTranslator struct {
	BaseUrl    string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Cache      contracts.RedisRepository
	CacheTTL   time.Duration
	Log        *zap.Logger
}

// NewGoogleTranslator returns a Translator backed by the public translate
// endpoint. cache may be nil, in which case every lookup goes out.
func NewGoogleTranslator(internalConfig *config.InternalConfig, cache contracts.RedisRepository, logger *zap.Logger) contracts.Translator {
	cfg := internalConfig.Translation
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	return &googleTranslator{
		BaseUrl:    strings.TrimRight(cfg.BaseUrl, "/"),
		HTTPClient: &http.Client{Timeout: cfg.RequestTimeout},
		Limiter:    rate.NewLimiter(limit, burst),
		Cache:      cache,
		CacheTTL:   time.Duration(cfg.CacheExpiredTimeInHours) * time.Hour,
		Log:        logger,
	}
}

func (t *googleTranslator) Translate(ctx context.Context, text string, lang models.Language) string {
	if lang == models.LanguageEnglish || !lang.IsValid() || strings.TrimSpace(text) == "" {
		return text
	}
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	key := cacheKey(text, lang)
	if cached := t.fromCache(ctx, key); cached != "" {
		return cached
	}

	translated, err := t.fetch(ctx, text, lang)
	if err != nil {
		t.Log.Debug("googleTranslator.Translate falling back to source text",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingLanguageKey, string(lang)),
			zap.Int(constvars.LoggingTranslationLenKey, len(text)),
			zap.Error(err),
		)
		return text
	}

	t.toCache(ctx, key, translated)
	return translated
}

func (t *googleTranslator) fetch(ctx context.Context, text string, lang models.Language) (string, error) {
	if err := t.Limiter.Wait(ctx); err != nil {
		return "", err
	}

	query := url.Values{}
	query.Set("client", "gtx")
	query.Set("sl", sourceLanguage)
	query.Set("tl", string(lang))
	query.Set("dt", "t")
	query.Set("q", text)
	endpoint := t.BaseUrl + "/translate_a/single?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	resp, err := t.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return "", fmt.Errorf(constvars.ErrDevTranslationRequestRejected, resp.StatusCode)
	}

	var payload []interface{}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}
	return joinSegments(payload)
}

// joinSegments reads the first element of the gtx reply, a list of
// [translated, source, ...] segments, and concatenates the translations.
func joinSegments(payload []interface{}) (string, error) {
	if len(payload) == 0 {
		return "", fmt.Errorf("empty translation payload")
	}
	segments, ok := payload[0].([]interface{})
	if !ok {
		return "", fmt.Errorf("unexpected translation payload")
	}
	var sb strings.Builder
	for _, segment := range segments {
		parts, ok := segment.([]interface{})
		if !ok || len(parts) == 0 {
			continue
		}
		if piece, ok := parts[0].(string); ok {
			sb.WriteString(piece)
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("no translated segments")
	}
	return sb.String(), nil
}

func cacheKey(text string, lang models.Language) string {
	sum := blake2b.Sum256([]byte(text))
	return constvars.RedisKeyTranslationPrefix + string(lang) + ":" + hex.EncodeToString(sum[:16])
}

func (t *googleTranslator) fromCache(ctx context.Context, key string) string {
	if t.Cache == nil {
		return ""
	}
	cached, err := t.Cache.Get(ctx, key)
	if err != nil {
		t.Log.Debug("googleTranslator.fromCache error reading cache", zap.Error(err))
		return ""
	}
	return cached
}

func (t *googleTranslator) toCache(ctx context.Context, key, translated string) {
	if t.Cache == nil {
		return
	}
	if err := t.Cache.SetRaw(ctx, key, []byte(translated), t.CacheTTL); err != nil {
		t.Log.Debug("googleTranslator.toCache error writing cache", zap.Error(err))
	}
}
