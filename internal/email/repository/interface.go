package repository

import (
	"context"

	"productivity-assistant/internal/model"
)

// Repository is the backend mailbox API.
type Repository interface {
	Recent(ctx context.Context, limit int) ([]model.Email, error)
	Summary(ctx context.Context) (model.EmailSummary, error)
	Sync(ctx context.Context) (SyncResult, error)
	SuggestReplies(ctx context.Context, emailID string) ([]string, error)
	Send(ctx context.Context, opt SendOptions) (SendResult, error)
}
