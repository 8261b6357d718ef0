package tui

import (
	"io"
	"net"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"golang.org/x/time/rate"
)

// RateLimitConfig throttles new sessions per remote IP.
type RateLimitConfig struct {
	Enabled           bool
	SessionsPerMinute float64
	Burst             int
}

// SessionLimiter hands out a token bucket per remote IP.
type SessionLimiter struct {
	config  RateLimitConfig
	clients map[string]*rate.Limiter
	mu      sync.Mutex
	logger  *log.Logger
	stop    chan struct{}
	once    sync.Once
}

// NewSessionLimiter creates a limiter. Call Close to stop its janitor.
func NewSessionLimiter(cfg RateLimitConfig, logger *log.Logger) *SessionLimiter {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	l := &SessionLimiter{
		config:  cfg,
		clients: make(map[string]*rate.Limiter),
		logger:  logger,
		stop:    make(chan struct{}),
	}
	if cfg.Enabled {
		go l.cleanup(time.Minute)
	}
	return l
}

func (l *SessionLimiter) limiter(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	lim, ok := l.clients[ip]
	if !ok {
		lim = rate.NewLimiter(rate.Limit(l.config.SessionsPerMinute/60), l.config.Burst)
		l.clients[ip] = lim
	}
	return lim
}

// Allow reports whether ip may open another session now.
func (l *SessionLimiter) Allow(ip string) bool {
	if !l.config.Enabled {
		return true
	}
	return l.limiter(ip).Allow()
}

// cleanup forgets clients whose bucket has refilled.
func (l *SessionLimiter) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case now := <-ticker.C:
			l.prune(now)
		}
	}
}

func (l *SessionLimiter) prune(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for ip, lim := range l.clients {
		if lim.TokensAt(now) >= float64(l.config.Burst) {
			delete(l.clients, ip)
		}
	}
}

// Close stops the janitor goroutine.
func (l *SessionLimiter) Close() {
	l.once.Do(func() { close(l.stop) })
}

// Middleware rejects sessions over the limit before the game starts.
func (l *SessionLimiter) Middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		ip := remoteIP(sess.RemoteAddr())
		if !l.Allow(ip) {
			l.logger.Warn("session rate limit exceeded",
				"remote", ip,
				"user", sess.User(),
				"per_minute", l.config.SessionsPerMinute,
				"burst", l.config.Burst,
			)
			wish.Fatalln(sess, "Too many connections, try again in a minute.")
			return
		}
		next(sess)
	}
}

// remoteIP strips the port from addr.
func remoteIP(addr net.Addr) string {
	if addr == nil {
		return ""
	}
	host, _, err := net.SplitHostPort(addr.String())
	if err != nil {
		return addr.String()
	}
	return host
}
