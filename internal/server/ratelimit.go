package server

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// defaultVisitorIdle is how long a client's bucket survives without requests.
const defaultVisitorIdle = 3 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// visitorLimiter keeps one token bucket per client IP. Buckets idle for
// longer than idle are dropped on the next sweep.
type visitorLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	rps       rate.Limit
	burst     int
	idle      time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func newVisitorLimiter(rps float64, burst int, idle time.Duration) *visitorLimiter {
	if idle <= 0 {
		idle = defaultVisitorIdle
	}
	return &visitorLimiter{
		visitors:  make(map[string]*visitor),
		rps:       rate.Limit(rps),
		burst:     burst,
		idle:      idle,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (v *visitorLimiter) get(ip string) *rate.Limiter {
	v.mu.Lock()
	defer v.mu.Unlock()

	now := v.now()
	if now.Sub(v.lastSweep) >= v.idle {
		v.sweep(now)
	}

	vis, exists := v.visitors[ip]
	if !exists {
		vis = &visitor{limiter: rate.NewLimiter(v.rps, v.burst)}
		v.visitors[ip] = vis
	}
	vis.lastSeen = now
	return vis.limiter
}

// sweep must be called with mu held.
func (v *visitorLimiter) sweep(now time.Time) {
	for ip, vis := range v.visitors {
		if now.Sub(vis.lastSeen) >= v.idle {
			delete(v.visitors, ip)
		}
	}
	v.lastSweep = now
}

// middleware keys on r.RemoteAddr. That is the socket peer unless
// middleware.RealIP ran first, which the router only mounts behind a proxy.
func (v *visitorLimiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !v.get(ip).Allow() {
			writeError(w, http.StatusTooManyRequests, "Too Many Requests")
			return
		}

		next.ServeHTTP(w, r)
	})
}
