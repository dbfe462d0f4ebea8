package email

import (
	"context"

	"productivity-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Recent(ctx context.Context, limit int) ([]model.Email, error)
	Summary(ctx context.Context) (model.EmailSummary, error)
	Sync(ctx context.Context) (SyncOutput, error)
	// SuggestReply returns candidate replies for the email.
	SuggestReply(ctx context.Context, emailID string) ([]string, error)
	Send(ctx context.Context, input SendInput) (SendOutput, error)
}
