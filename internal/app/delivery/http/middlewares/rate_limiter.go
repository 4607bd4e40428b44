package middlewares

import (
	"adhd-intake-service/internal/pkg/exceptions"
	"adhd-intake-service/internal/pkg/utils"
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter guards the write endpoints per client IP. A client that runs
// out of tokens is blocked for blockTime before it is let back in.
type RateLimiter struct {
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	requests  int
	per       time.Duration
	blockTime time.Duration
	log       *zap.Logger
	now       func() time.Time
}

func NewRateLimiter(requests int, per, blockTime time.Duration, logger *zap.Logger) *RateLimiter {
	if requests < 1 {
		requests = 1
	}
	return &RateLimiter{
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		requests:  requests,
		per:       per,
		blockTime: blockTime,
		log:       logger,
		now:       time.Now,
	}
}

func (r *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip, _, err := net.SplitHostPort(req.RemoteAddr)
		if err != nil {
			ip = req.RemoteAddr
		}

		if !r.allow(ip) {
			r.log.Warn("RateLimiter.Limit blocked client",
				zap.String("ip", ip),
				zap.String("endpoint", req.URL.Path),
			)
			utils.BuildErrorResponse(r.log, w, exceptions.ErrTooManyRequests(ip))
			return
		}

		next.ServeHTTP(w, req)
	})
}

func (r *RateLimiter) allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if blockedUntil, found := r.blocked[ip]; found {
		if now.Before(blockedUntil) {
			return false
		}
		delete(r.blocked, ip)
	}

	limiter, exists := r.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(rate.Every(r.per/time.Duration(r.requests)), r.requests)
		r.limiters[ip] = limiter
	}

	if !limiter.AllowN(now, 1) {
		r.blocked[ip] = now.Add(r.blockTime)
		return false
	}
	return true
}

// CreateRateLimiter returns a per-IP limiter middleware that logs through m.Log.
func (m *Middlewares) CreateRateLimiter(requests int, per, blockTime time.Duration) func(next http.Handler) http.Handler {
	return NewRateLimiter(requests, per, blockTime, m.Log).Limit
}
