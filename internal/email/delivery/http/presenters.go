package http

import (
	"productivity-assistant/internal/email"
	"productivity-assistant/internal/model"
	"productivity-assistant/pkg/response"
)

type recentReq struct {
	Limit int `form:"limit"`
}

type sendReq struct {
	To        string `json:"to"          binding:"required"`
	Subject   string `json:"subject"     binding:"required,max=255"`
	Body      string `json:"body"        binding:"required"`
	InReplyTo string `json:"in_reply_to"`
}

func (r sendReq) toInput() email.SendInput {
	return email.SendInput{To: r.To, Subject: r.Subject, Body: r.Body, InReplyTo: r.InReplyTo}
}

type emailResp struct {
	ID      string            `json:"id"`
	Subject string            `json:"subject"`
	Sender  string            `json:"sender"`
	Snippet string            `json:"snippet"`
	Date    response.DateTime `json:"date"`
	IsRead  bool              `json:"is_read"`
	Labels  []string          `json:"labels,omitempty"`
}

type recentResp struct {
	Emails []emailResp `json:"emails"`
}

func newRecentResp(emails []model.Email) recentResp {
	resp := recentResp{Emails: make([]emailResp, len(emails))}
	for i, e := range emails {
		resp.Emails[i] = emailResp{
			ID:      e.ID,
			Subject: e.Subject,
			Sender:  e.Sender,
			Snippet: e.Snippet,
			Date:    response.DateTime(e.Date),
			IsRead:  e.IsRead,
			Labels:  e.Labels,
		}
	}
	return resp
}

type summaryResp struct {
	TotalUnread      int      `json:"total_unread"`
	ImportantEmails  int      `json:"important_emails"`
	Summary          string   `json:"summary"`
	SuggestedActions []string `json:"suggested_actions"`
}

func newSummaryResp(s model.EmailSummary) summaryResp {
	return summaryResp{
		TotalUnread:      s.TotalUnread,
		ImportantEmails:  s.ImportantEmails,
		Summary:          s.Summary,
		SuggestedActions: s.SuggestedActions,
	}
}

type repliesResp struct {
	SuggestedReplies []string `json:"suggested_replies"`
}

type sendResp struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type syncResp struct {
	Message string `json:"message"`
	Synced  int    `json:"emails_synced"`
}
