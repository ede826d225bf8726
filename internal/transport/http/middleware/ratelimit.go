package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/domain"
	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/i18n"
	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/pkg/clock"
	"golang.org/x/time/rate"
)

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter is a per-IP token-bucket limiter with automatic stale-entry
// cleanup. Buckets refill continuously, so after a denied attempt the next
// allowance still lands exactly one refill interval after the last allowed
// request. Denied attempts never consume tokens.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*ipLimiter
	r        rate.Limit
	burst    int
	clk      clock.Clock
}

// NewRateLimiter creates a per-IP limiter refilling at r with capacity burst.
// The guarded public routes use rate.Every(5*time.Minute) with burst 1: one
// request per IP, then one more every five minutes.
func NewRateLimiter(r rate.Limit, burst int, clk clock.Clock) *RateLimiter {
	rl := &RateLimiter{
		limiters: make(map[string]*ipLimiter),
		r:        r,
		burst:    burst,
		clk:      clk,
	}
	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) get(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	if v, ok := rl.limiters[ip]; ok {
		v.lastSeen = time.Now()
		return v.limiter
	}
	l := rate.NewLimiter(rl.r, rl.burst)
	rl.limiters[ip] = &ipLimiter{limiter: l, lastSeen: time.Now()}
	return l
}

// Allow reports whether the identity may pass right now, consuming a token if so.
func (rl *RateLimiter) Allow(identity string) bool {
	return rl.get(identity).AllowN(rl.clk.Now(), 1)
}

// cleanup removes stale entries every 5 minutes.
func (rl *RateLimiter) cleanup() {
	for {
		time.Sleep(5 * time.Minute)
		rl.mu.Lock()
		for ip, v := range rl.limiters {
			if time.Since(v.lastSeen) > 10*time.Minute {
				delete(rl.limiters, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// Limit enforces the per-IP quota for one guarded route. messageKey selects
// the localized rejection text. Authenticated operational staff bypass the
// limiter entirely; their buckets are neither consulted nor consumed.
func (rl *RateLimiter) Limit(messageKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if claims, ok := ClaimsFromContext(r.Context()); ok && domain.IsOperationalStaff(claims.Role) {
				next.ServeHTTP(w, r)
				return
			}
			if !rl.Allow(realIP(r)) {
				loc, ok := LocaleFromContext(r.Context())
				if !ok {
					loc = i18n.LocaleEN
				}
				writeStatusJSON(w, http.StatusTooManyRequests, i18n.Message(loc, messageKey))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// realIP resolves the client identity: first X-Forwarded-For hop, then
// X-Real-Ip, then the connection's remote address without the port.
func realIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}
	if xr := r.Header.Get("X-Real-Ip"); xr != "" {
		return xr
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
