package auth

import (
	"context"
	"sync"

	"golang.org/x/oauth2"
)

// Holder owns the single active Session of the process. Every authenticated
// backend client reads its bearer token from here.
type Holder struct {
	mu        sync.RWMutex
	session   *Session
	listeners []func(ctx context.Context)
}

func NewHolder() *Holder {
	return &Holder{}
}

// Establish replaces the current session.
func (h *Holder) Establish(s Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.session = &s
}

// Current returns the active session.
func (h *Holder) Current() (Session, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.session == nil {
		return Session{}, false
	}
	return *h.session, true
}

// Token implements oauth2.TokenSource.
func (h *Holder) Token() (*oauth2.Token, error) {
	s, ok := h.Current()
	if !ok || s.AccessToken == "" {
		return nil, ErrNotAuthenticated
	}
	tokenType := s.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}
	return &oauth2.Token{AccessToken: s.AccessToken, TokenType: tokenType}, nil
}

// OnLogout registers fn to run whenever a session is torn down.
func (h *Holder) OnLogout(fn func(ctx context.Context)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.listeners = append(h.listeners, fn)
}

// Clear tears the session down and notifies listeners. It reports whether
// there was a session to clear; listeners only run in that case.
func (h *Holder) Clear(ctx context.Context) bool {
	h.mu.Lock()
	if h.session == nil {
		h.mu.Unlock()
		return false
	}
	h.session = nil
	listeners := append([]func(context.Context){}, h.listeners...)
	h.mu.Unlock()

	for _, fn := range listeners {
		fn(ctx)
	}
	return true
}

var _ oauth2.TokenSource = (*Holder)(nil)
