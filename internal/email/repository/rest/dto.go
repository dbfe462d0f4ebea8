package rest

import (
	"productivity-assistant/internal/model"
	"productivity-assistant/pkg/apiclient"
)

type emailDTO struct {
	ID      string         `json:"id"`
	Subject string         `json:"subject"`
	Sender  string         `json:"sender"`
	Snippet string         `json:"snippet"`
	Date    apiclient.Time `json:"date"`
	IsRead  bool           `json:"is_read"`
	Labels  []string       `json:"labels"`
}

func (d emailDTO) toDomain() model.Email {
	return model.Email{
		ID:      d.ID,
		Subject: d.Subject,
		Sender:  d.Sender,
		Snippet: d.Snippet,
		Date:    d.Date.Time,
		IsRead:  d.IsRead,
		Labels:  d.Labels,
	}
}

type summaryDTO struct {
	TotalUnread      int      `json:"total_unread"`
	ImportantEmails  int      `json:"important_emails"`
	Summary          string   `json:"summary"`
	SuggestedActions []string `json:"suggested_actions"`
}

type replyResp struct {
	SuggestedReplies []string `json:"suggested_replies"`
}

type sendReq struct {
	To        string `json:"to"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	InReplyTo string `json:"in_reply_to,omitempty"`
}

type sendResp struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type syncResp struct {
	Message      string `json:"message"`
	EmailsSynced int    `json:"emails_synced"`
}
