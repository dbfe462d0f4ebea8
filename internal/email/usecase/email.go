package usecase

import (
	"context"
	"net/mail"
	"strings"

	"productivity-assistant/internal/email"
	"productivity-assistant/internal/email/repository"
	"productivity-assistant/internal/model"
)

func (uc *implUseCase) Recent(ctx context.Context, limit int) ([]model.Email, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	limit = min(limit, maxRecentLimit)

	emails, err := uc.repo.Recent(ctx, limit)
	if err != nil {
		uc.l.Errorf(ctx, "email.usecase.Recent: %v", err)
		return nil, err
	}
	return emails, nil
}

func (uc *implUseCase) Summary(ctx context.Context) (model.EmailSummary, error) {
	s, err := uc.repo.Summary(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "email.usecase.Summary: %v", err)
		return model.EmailSummary{}, err
	}
	return s, nil
}

func (uc *implUseCase) Sync(ctx context.Context) (email.SyncOutput, error) {
	res, err := uc.repo.Sync(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "email.usecase.Sync: %v", err)
		return email.SyncOutput{}, err
	}
	uc.l.Infof(ctx, "email.usecase.Sync: %s (%d emails)", res.Message, res.Synced)
	return email.SyncOutput{Message: res.Message, Synced: res.Synced}, nil
}

func (uc *implUseCase) SuggestReply(ctx context.Context, emailID string) ([]string, error) {
	emailID = strings.TrimSpace(emailID)
	if emailID == "" {
		return nil, email.ErrEmptyEmailID
	}

	replies, err := uc.repo.SuggestReplies(ctx, emailID)
	if err != nil {
		uc.l.Errorf(ctx, "email.usecase.SuggestReply: %v", err)
		return nil, err
	}
	return replies, nil
}

// Send validates the message before handing it to the backend.
func (uc *implUseCase) Send(ctx context.Context, input email.SendInput) (email.SendOutput, error) {
	to, err := mail.ParseAddress(strings.TrimSpace(input.To))
	if err != nil {
		return email.SendOutput{}, email.ErrInvalidRecipient
	}
	subject := strings.TrimSpace(input.Subject)
	if subject == "" {
		return email.SendOutput{}, email.ErrEmptySubject
	}
	if strings.TrimSpace(input.Body) == "" {
		return email.SendOutput{}, email.ErrEmptyBody
	}

	res, err := uc.repo.Send(ctx, repository.SendOptions{
		To:        to.Address,
		Subject:   subject,
		Body:      input.Body,
		InReplyTo: strings.TrimSpace(input.InReplyTo),
	})
	if err != nil {
		uc.l.Errorf(ctx, "email.usecase.Send: %v", err)
		return email.SendOutput{}, err
	}

	uc.l.Infof(ctx, "email.usecase.Send: id=%s", res.ID)
	return email.SendOutput{ID: res.ID, Message: res.Message}, nil
}
