// Package session tracks which client identities currently hold one of the
// limited concurrent-access slots.
package session

import (
	"net/http"
	"strings"
	"sync"
	"time"
)

// UnknownIdentity is the bucket for requests that carry no forwarding
// headers. All such clients share a single slot.
const UnknownIdentity = "unknown"

// Gate enforces the concurrency cap over client sessions. A session is live
// while now-lastSeen <= timeout; expired sessions are swept before every
// admission decision. All methods serialize on one mutex so that two logins
// racing for the last free slot cannot both pass.
type Gate struct {
	mu       sync.Mutex
	sessions map[string]time.Time
	max      int
	timeout  time.Duration
}

func NewGate(max int, timeout time.Duration) *Gate {
	return &Gate{
		sessions: make(map[string]time.Time),
		max:      max,
		timeout:  timeout,
	}
}

// ResolveIdentity derives a stable client identity from forwarding headers.
// It never fails; absent headers resolve to UnknownIdentity.
func ResolveIdentity(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if first := strings.TrimSpace(strings.Split(fwd, ",")[0]); first != "" {
			return first
		}
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	return UnknownIdentity
}

// Admit reports whether identity may log in at now. An identity that already
// holds a session is refreshed and admitted without consuming a new slot.
// Admission does NOT create a session: the caller records the login only
// after the credential check succeeds, so a wrong password never burns a
// slot.
func (g *Gate) Admit(identity string, now time.Time) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.sweep(now)

	if _, ok := g.sessions[identity]; ok {
		g.sessions[identity] = now
		return true
	}
	return len(g.sessions) < g.max
}

// RecordLogin inserts or refreshes the session for identity. Call only after
// a successful password check with a prior positive Admit.
func (g *Gate) RecordLogin(identity string, now time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sessions[identity] = now
}

// Login is the admission check and slot creation in one critical section, so
// two concurrent logins cannot both observe the last free slot. It is called
// only after the password check succeeded.
func (g *Gate) Login(identity string, now time.Time) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.sweep(now)

	if _, ok := g.sessions[identity]; !ok && len(g.sessions) >= g.max {
		return false
	}
	g.sessions[identity] = now
	return true
}

// Touch refreshes the session timestamp on authenticated traffic. An
// authenticated identity without a tracked session (for example after a
// restart) is left untracked.
func (g *Gate) Touch(identity string, now time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.sessions[identity]; ok {
		g.sessions[identity] = now
	}
}

// Sweep drops every session whose last activity is older than the timeout.
func (g *Gate) Sweep(now time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sweep(now)
}

// sweep must be called with g.mu held.
func (g *Gate) sweep(now time.Time) {
	for identity, lastSeen := range g.sessions {
		if now.Sub(lastSeen) > g.timeout {
			delete(g.sessions, identity)
		}
	}
}

// Active returns the number of live sessions at now.
func (g *Gate) Active(now time.Time) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sweep(now)
	return len(g.sessions)
}
