package tui

import (
	"net"
	"sync"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"golang.org/x/time/rate"
)

// RateLimitConfig bounds how often one remote host may open sessions.
type RateLimitConfig struct {
	// PerMinute is the sustained session rate. Zero disables limiting.
	PerMinute float64

	// Burst is how many sessions may open back to back.
	Burst int
}

// DefaultRateLimitConfig allows a handful of quick reconnects, then one
// session every six seconds.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{PerMinute: 10, Burst: 5}
}

const limiterIdle = 10 * time.Minute

type hostLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ConnLimiter tracks a token bucket per remote host.
type ConnLimiter struct {
	config    RateLimitConfig
	mu        sync.Mutex
	hosts     map[string]*hostLimiter
	lastPrune time.Time
	now       func() time.Time
}

// NewConnLimiter creates a limiter for the given config.
func NewConnLimiter(cfg RateLimitConfig) *ConnLimiter {
	return &ConnLimiter{
		config: cfg,
		hosts:  make(map[string]*hostLimiter),
		now:    time.Now,
	}
}

// Enabled reports whether sessions are limited at all.
func (cl *ConnLimiter) Enabled() bool {
	return cl.config.PerMinute > 0 && cl.config.Burst > 0
}

// Allow reports whether host may open another session now.
func (cl *ConnLimiter) Allow(host string) bool {
	if !cl.Enabled() {
		return true
	}

	now := cl.now()

	cl.mu.Lock()
	defer cl.mu.Unlock()

	if now.Sub(cl.lastPrune) > time.Minute {
		cl.prune(now)
	}

	hl, ok := cl.hosts[host]
	if !ok {
		hl = &hostLimiter{
			limiter: rate.NewLimiter(rate.Limit(cl.config.PerMinute/60), cl.config.Burst),
		}
		cl.hosts[host] = hl
	}
	hl.lastSeen = now
	return hl.limiter.AllowN(now, 1)
}

// Hosts returns how many remote hosts are being tracked.
func (cl *ConnLimiter) Hosts() int {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return len(cl.hosts)
}

// prune forgets hosts that have been quiet long enough to refill.
// Caller holds mu.
func (cl *ConnLimiter) prune(now time.Time) {
	for host, hl := range cl.hosts {
		if now.Sub(hl.lastSeen) > limiterIdle {
			delete(cl.hosts, host)
		}
	}
	cl.lastPrune = now
}

// remoteHost strips the port from a remote address.
func remoteHost(addr net.Addr) string {
	if addr == nil {
		return ""
	}
	host, _, err := net.SplitHostPort(addr.String())
	if err != nil {
		return addr.String()
	}
	return host
}

// rateLimitMiddleware turns away hosts that reconnect too quickly.
func (s *SSHServer) rateLimitMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		host := remoteHost(sshSession.RemoteAddr())
		if !s.limiter.Allow(host) {
			s.logger.Warn("rate limit exceeded",
				"user", sshSession.User(),
				"remote", host,
				"per_minute", s.config.RateLimit.PerMinute,
			)
			wish.Fatalln(sshSession, "Too many sessions from your address. Try again in a minute.")
			return
		}
		next(sshSession)
	}
}
