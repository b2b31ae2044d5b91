// pkg/memcache/invite_tokens.go
package memcache

import (
	"sync"
	"time"
)

// Invite is what an outstanding booking invitation resolves to.
type Invite struct {
	BookingID string
	Email     string
}

type InviteTokenStore interface {
	Set(token string, invite Invite, ttl time.Duration)

	// Consume returns the invite for token if not expired,
	// and removes the token (single-use).
	Consume(token string) (Invite, bool)

	// Peek reads without consuming.
	Peek(token string) (Invite, bool)
}

type entry struct {
	invite    Invite
	expiresAt time.Time
}

type InviteTokens struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewInviteTokens() *InviteTokens {
	return &InviteTokens{
		data: make(map[string]entry),
	}
}

func (s *InviteTokens) Set(token string, invite Invite, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[token] = entry{
		invite:    invite,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *InviteTokens) Consume(token string) (Invite, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[token]
	if !ok {
		return Invite{}, false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, token) // cleanup expired
		return Invite{}, false
	}
	delete(s.data, token) // single-use
	return e.invite, true
}

func (s *InviteTokens) Peek(token string) (Invite, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[token]
	if !ok || time.Now().After(e.expiresAt) {
		return Invite{}, false
	}
	return e.invite, true
}
