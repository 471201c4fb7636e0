package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// idleTTL is how long a client's limiter survives without traffic.
const idleTTL = 10 * time.Minute

// RateLimiter holds one token bucket per client host. Call Stop on shutdown
// to end the sweeper goroutine.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*client
	now     func() time.Time
	stop    chan struct{}
	done    chan struct{}
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter starts a limiter whose idle clients are swept every interval.
func NewRateLimiter(interval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*client),
		now:     time.Now,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go rl.sweepLoop(interval)
	return rl
}

// Stop ends the sweeper and waits for it to exit. Safe to call twice.
func (rl *RateLimiter) Stop() {
	rl.mu.Lock()
	select {
	case <-rl.stop:
	default:
		close(rl.stop)
	}
	rl.mu.Unlock()
	<-rl.done
}

// Limit allows each client host perMinute requests per minute, with bursts
// up to perMinute. Rejected requests get 429 with Retry-After.
func (rl *RateLimiter) Limit(perMinute int) Middleware {
	perSecond := rate.Limit(float64(perMinute) / 60)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			now := rl.now()
			lim := rl.limiter(clientKey(r), perSecond, perMinute, now)

			if !lim.AllowN(now, 1) {
				wait := (1 - lim.TokensAt(now)) / float64(lim.Limit())
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait-1e-9))))
				writeError(w, http.StatusTooManyRequests, "RATE_LIMITED", "rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientKey drops the source port so one host shares a bucket.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (rl *RateLimiter) limiter(key string, perSecond rate.Limit, burst int, now time.Time) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	c, ok := rl.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(perSecond, burst)}
		rl.clients[key] = c
	}
	c.lastSeen = now
	return c.limiter
}

func (rl *RateLimiter) sweep(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, c := range rl.clients {
		if now.Sub(c.lastSeen) > idleTTL {
			delete(rl.clients, key)
		}
	}
}

func (rl *RateLimiter) sweepLoop(interval time.Duration) {
	defer close(rl.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.sweep(rl.now())
		}
	}
}
