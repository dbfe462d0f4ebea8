package chat

import "context"

// Manager owns the ordered message log of one conversation.
//
//go:generate mockery --name Manager
type Manager interface {
	// LoadHistory replaces the log with the server's history of sessionID
	// and adopts sessionID for later sends. A manager handed out by the
	// UseCase keeps its id and rejects any other with ErrSessionMismatch.
	LoadHistory(ctx context.Context, sessionID string) error
	// SendMessage appends content as a user message right away, then the
	// assistant reply once it arrives. Blank content is ignored.
	SendMessage(ctx context.Context, content string) (Message, error)
	// ClearHistory empties the log locally, then deletes it remotely.
	ClearHistory(ctx context.Context) error

	Messages() []Message
	State() State
	Snapshot() Snapshot
}

// UseCase keeps the managers of every open conversation.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Create starts a conversation under a fresh session id.
	Create(ctx context.Context) Manager
	// Open returns the manager for sessionID, creating it if needed.
	Open(ctx context.Context, sessionID string) (Manager, error)
	Get(sessionID string) (Manager, error)
	Close(ctx context.Context, sessionID string)
	// Reset drops every manager and cached history.
	Reset(ctx context.Context)
}
