package middleware

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/influencerflow/backend/pkg/errorx"
	"github.com/influencerflow/backend/pkg/router"
	"github.com/influencerflow/backend/pkg/xcontext"
	"github.com/puzpuzpuz/xsync"
	"golang.org/x/time/rate"
)

const minIdleTimeout = time.Minute

type clientLimiter struct {
	lastSeen int64
	limiter  *rate.Limiter
}

type rateLimiter struct {
	lastSweep int64

	limit rate.Limit
	burst int

	// A limiter idle for this long is full again, so it can be dropped.
	idleTimeout time.Duration
	now         func() time.Time

	clients *xsync.MapOf[*clientLimiter]
}

func newRateLimiter(limit rate.Limit, burst int) *rateLimiter {
	idleTimeout := minIdleTimeout
	if limit > 0 && limit != rate.Inf {
		refill := time.Duration(float64(burst) / float64(limit) * float64(time.Second))
		if refill > idleTimeout {
			idleTimeout = refill
		}
	}

	return &rateLimiter{
		limit:       limit,
		burst:       burst,
		idleTimeout: idleTimeout,
		now:         time.Now,
		clients:     xsync.NewMapOf[*clientLimiter](),
		lastSweep:   time.Now().UnixNano(),
	}
}

// RateLimiter allows limit requests per second with the given burst, counted
// per client ip. The client ip only comes from forwarded headers set by a
// trusted proxy.
func RateLimiter(limit rate.Limit, burst int) router.MiddlewareFunc {
	return newRateLimiter(limit, burst).middleware
}

func (l *rateLimiter) middleware(ctx context.Context) (context.Context, error) {
	ip := xcontext.ClientIP(ctx)
	if !l.allow(ip) {
		xcontext.Logger(ctx).Debugf("Rate limit exceeded for %s", ip)
		return ctx, errorx.New(errorx.TooManyRequests, "Too many requests, please try again later")
	}

	return ctx, nil
}

func (l *rateLimiter) allow(ip string) bool {
	now := l.now()
	l.sweep(now)

	client, ok := l.clients.Load(ip)
	if !ok {
		client, _ = l.clients.LoadOrStore(ip, &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)})
	}

	atomic.StoreInt64(&client.lastSeen, now.UnixNano())
	return client.limiter.AllowN(now, 1)
}

// sweep drops idle clients, at most once per idle timeout.
func (l *rateLimiter) sweep(now time.Time) {
	last := atomic.LoadInt64(&l.lastSweep)
	if now.UnixNano()-last < int64(l.idleTimeout) {
		return
	}

	if !atomic.CompareAndSwapInt64(&l.lastSweep, last, now.UnixNano()) {
		return
	}

	deadline := now.Add(-l.idleTimeout).UnixNano()
	l.clients.Range(func(ip string, client *clientLimiter) bool {
		if atomic.LoadInt64(&client.lastSeen) < deadline {
			l.clients.Delete(ip)
		}
		return true
	})
}
