package repository

import (
	"context"

	"productivity-assistant/internal/chat"
)

// Repository is the backend conversation API.
type Repository interface {
	// Send posts a user message and returns the assistant reply.
	Send(ctx context.Context, opt SendOptions) (chat.Message, error)
	// History returns one page of history. Pages are counted from the
	// newest message backwards; messages inside a page are oldest first.
	History(ctx context.Context, opt HistoryOptions) (chat.HistoryPage, error)
	DeleteHistory(ctx context.Context, sessionID string) error
}
