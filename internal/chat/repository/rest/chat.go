package rest

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"productivity-assistant/internal/chat"
	"productivity-assistant/internal/chat/repository"
)

func (r *implRepository) Send(ctx context.Context, opt repository.SendOptions) (chat.Message, error) {
	var resp messageDTO
	body := sendReq{Content: opt.Content, SessionID: opt.SessionID}
	if err := r.client.Post(ctx, "/chat/send", body, &resp); err != nil {
		return chat.Message{}, fmt.Errorf("chat.rest.Send: %w", err)
	}
	return resp.toDomain(), nil
}

func (r *implRepository) History(ctx context.Context, opt repository.HistoryOptions) (chat.HistoryPage, error) {
	q := url.Values{}
	q.Set("session_id", opt.SessionID)
	if opt.Limit > 0 {
		q.Set("limit", strconv.Itoa(opt.Limit))
	}
	if opt.Offset > 0 {
		q.Set("offset", strconv.Itoa(opt.Offset))
	}

	var resp historyResp
	if err := r.client.Get(ctx, "/chat/history", q, &resp); err != nil {
		return chat.HistoryPage{}, fmt.Errorf("chat.rest.History: %w", err)
	}

	page := chat.HistoryPage{
		Messages: make([]chat.Message, 0, len(resp.Messages)),
		Total:    resp.Total,
	}
	for _, m := range resp.Messages {
		page.Messages = append(page.Messages, m.toDomain())
	}
	return page, nil
}

func (r *implRepository) DeleteHistory(ctx context.Context, sessionID string) error {
	if err := r.client.Delete(ctx, "/chat/history/"+url.PathEscape(sessionID), nil); err != nil {
		return fmt.Errorf("chat.rest.DeleteHistory: %w", err)
	}
	return nil
}
