package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"productivity-assistant/internal/email/repository"
	"productivity-assistant/internal/model"
)

func (r *implRepository) Recent(ctx context.Context, limit int) ([]model.Email, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var resp []emailDTO
	if err := r.client.Get(ctx, "/email/recent", q, &resp); err != nil {
		return nil, fmt.Errorf("email.rest.Recent: %w", err)
	}

	emails := make([]model.Email, 0, len(resp))
	for _, d := range resp {
		emails = append(emails, d.toDomain())
	}
	return emails, nil
}

func (r *implRepository) Summary(ctx context.Context) (model.EmailSummary, error) {
	var resp summaryDTO
	if err := r.client.Get(ctx, "/email/summary", nil, &resp); err != nil {
		return model.EmailSummary{}, fmt.Errorf("email.rest.Summary: %w", err)
	}
	return model.EmailSummary{
		TotalUnread:      resp.TotalUnread,
		ImportantEmails:  resp.ImportantEmails,
		Summary:          resp.Summary,
		SuggestedActions: resp.SuggestedActions,
	}, nil
}

func (r *implRepository) Sync(ctx context.Context) (repository.SyncResult, error) {
	var resp syncResp
	if err := r.client.Get(ctx, "/email/sync", nil, &resp); err != nil {
		return repository.SyncResult{}, fmt.Errorf("email.rest.Sync: %w", err)
	}
	return repository.SyncResult{Message: resp.Message, Synced: resp.EmailsSynced}, nil
}

// SuggestReplies passes the email id as a query parameter, as the backend expects.
func (r *implRepository) SuggestReplies(ctx context.Context, emailID string) ([]string, error) {
	q := url.Values{}
	q.Set("email_id", emailID)

	var resp replyResp
	if err := r.client.DoJSON(ctx, http.MethodPost, "/email/reply", q, nil, &resp); err != nil {
		return nil, fmt.Errorf("email.rest.SuggestReplies: %w", err)
	}
	return resp.SuggestedReplies, nil
}

func (r *implRepository) Send(ctx context.Context, opt repository.SendOptions) (repository.SendResult, error) {
	body := sendReq{To: opt.To, Subject: opt.Subject, Body: opt.Body, InReplyTo: opt.InReplyTo}

	var resp sendResp
	if err := r.client.Post(ctx, "/email/send", body, &resp); err != nil {
		return repository.SendResult{}, fmt.Errorf("email.rest.Send: %w", err)
	}
	return repository.SendResult{ID: resp.ID, Message: resp.Message}, nil
}
