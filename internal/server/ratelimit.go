package server

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Per-client budget. Generation endpoints hit the AI backend, so the budget
// is deliberately tight for a single-user tool.
const (
	defaultRatePerSecond = 5
	defaultBurst         = 10
	limiterIdleTTL       = 10 * time.Minute
)

type clientEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// clientLimiter keeps one token bucket per client IP and evicts buckets
// that have been idle past the TTL.
type clientLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientEntry
	rate    rate.Limit
	burst   int
}

func newClientLimiter(perSecond float64, burst int) *clientLimiter {
	l := &clientLimiter{
		clients: make(map[string]*clientEntry),
		rate:    rate.Limit(perSecond),
		burst:   burst,
	}
	go l.cleanupLoop()
	return l
}

// Allow reports whether the client may proceed now.
func (l *clientLimiter) Allow(clientID string) bool {
	l.mu.Lock()
	entry, ok := l.clients[clientID]
	if !ok {
		entry = &clientEntry{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.clients[clientID] = entry
	}
	entry.lastSeen = time.Now()
	l.mu.Unlock()

	return entry.limiter.Allow()
}

func (l *clientLimiter) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		l.mu.Lock()
		for id, entry := range l.clients {
			if time.Since(entry.lastSeen) > limiterIdleTTL {
				delete(l.clients, id)
			}
		}
		l.mu.Unlock()
	}
}
