package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"productivity-assistant/internal/chat"
)

func (uc *implUseCase) Create(ctx context.Context) chat.Manager {
	m := uc.newManager(uuid.NewString())
	m.pinned = true
	uc.sessions.Add(m.sessionID, m)
	uc.l.Debugf(ctx, "chat.usecase.Create: session %s", m.sessionID)
	return m
}

// Open returns the open manager for sessionID or starts one, seeded with
// the last history loaded for it.
func (uc *implUseCase) Open(ctx context.Context, sessionID string) (chat.Manager, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, chat.ErrEmptySessionID
	}
	uc.openMu.Lock()
	defer uc.openMu.Unlock()
	if m, ok := uc.sessions.Get(sessionID); ok {
		return m, nil
	}

	m := uc.newManager(sessionID)
	m.pinned = true
	if cached, ok := uc.history.Get(sessionID); ok {
		m.messages = append([]chat.Message(nil), cached...)
	}
	uc.sessions.Add(sessionID, m)
	uc.l.Debugf(ctx, "chat.usecase.Open: session %s (%d cached messages)", sessionID, len(m.messages))
	return m, nil
}

func (uc *implUseCase) Get(sessionID string) (chat.Manager, error) {
	m, ok := uc.sessions.Get(sessionID)
	if !ok {
		return nil, chat.ErrSessionNotFound
	}
	return m, nil
}

// Close forgets the manager only; the server keeps the history.
func (uc *implUseCase) Close(ctx context.Context, sessionID string) {
	uc.sessions.Remove(sessionID)
}

func (uc *implUseCase) Reset(ctx context.Context) {
	n := uc.sessions.Len()
	uc.sessions.Purge()
	uc.history.Purge()
	uc.l.Infof(ctx, "chat.usecase.Reset: dropped %d sessions", n)
}
