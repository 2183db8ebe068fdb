package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	apperrors "github.com/legalsuite/case-service/pkg/errorutil"
)

const (
	rateLimitMaxBuckets = 10000
	rateLimitIdleTTL    = 10 * time.Minute
)

type ipBucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// ipLimiter keeps one token bucket per client IP. Buckets idle past the TTL
// are swept out whenever the map would grow past its cap, so the map stays
// bounded for the process lifetime.
type ipLimiter struct {
	mu      sync.Mutex
	rps     rate.Limit
	burst   int
	buckets map[string]*ipBucket
}

func newIPLimiter(rps rate.Limit, burst int) *ipLimiter {
	return &ipLimiter{rps: rps, burst: burst, buckets: make(map[string]*ipBucket)}
}

func (l *ipLimiter) allow(ip string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	bucket, ok := l.buckets[ip]
	if !ok {
		if len(l.buckets) >= rateLimitMaxBuckets {
			l.evict(now)
		}
		bucket = &ipBucket{lim: rate.NewLimiter(l.rps, l.burst)}
		l.buckets[ip] = bucket
	}
	bucket.lastSeen = now
	return bucket.lim.Allow()
}

// evict drops buckets not seen within the idle TTL. Caller holds the lock.
func (l *ipLimiter) evict(now time.Time) {
	for ip, bucket := range l.buckets {
		if now.Sub(bucket.lastSeen) > rateLimitIdleTTL {
			delete(l.buckets, ip)
		}
	}
}

// RateLimitPerIP applies a token bucket per client IP. Used on the login
// endpoint to slow credential guessing.
func RateLimitPerIP(rps rate.Limit, burst int) fiber.Handler {
	limiter := newIPLimiter(rps, burst)

	return func(c *fiber.Ctx) error {
		if limiter.allow(c.IP(), time.Now()) {
			return c.Next()
		}
		return &apperrors.DomainError{
			Code:       "RATE_LIMITED",
			Message:    "too many requests",
			HTTPStatus: http.StatusTooManyRequests,
		}
	}
}
