package http

import (
	"productivity-assistant/internal/chat"
	"productivity-assistant/pkg/response"
)

// --- Request DTOs ---

type sendReq struct {
	Content string `json:"content"`
	// Speak reads the reply aloud.
	Speak bool `json:"speak"`
}

type sendVoiceReq struct {
	Speak bool `json:"speak"`
}

// --- Response DTOs ---

type quickReplyResp struct {
	Title  string `json:"title"`
	Action string `json:"action"`
}

type messageResp struct {
	ID           string            `json:"id"`
	Role         string            `json:"role"`
	Content      string            `json:"content"`
	CreatedAt    response.DateTime `json:"created_at"`
	QuickReplies []quickReplyResp  `json:"quick_replies,omitempty"`
}

func newMessageResp(m chat.Message) messageResp {
	resp := messageResp{
		ID:        m.ID,
		Role:      string(m.Role),
		Content:   m.Content,
		CreatedAt: response.DateTime(m.CreatedAt),
	}
	for _, q := range m.QuickReplies {
		resp.QuickReplies = append(resp.QuickReplies, quickReplyResp{Title: q.Title, Action: q.Action})
	}
	return resp
}

type sessionResp struct {
	SessionID string        `json:"session_id"`
	Loading   bool          `json:"loading"`
	Error     string        `json:"error,omitempty"`
	Messages  []messageResp `json:"messages"`
}

func newSessionResp(s chat.Snapshot) sessionResp {
	resp := sessionResp{
		SessionID: s.SessionID,
		Loading:   s.Loading,
		Error:     s.Err,
		Messages:  make([]messageResp, 0, len(s.Messages)),
	}
	for _, m := range s.Messages {
		resp.Messages = append(resp.Messages, newMessageResp(m))
	}
	return resp
}

type sendResp struct {
	// Reply is empty when blank content was ignored.
	Reply   *messageResp `json:"reply,omitempty"`
	Session sessionResp  `json:"session"`
}

func newSendResp(reply chat.Message, s chat.Snapshot) sendResp {
	resp := sendResp{Session: newSessionResp(s)}
	if reply.ID != "" {
		r := newMessageResp(reply)
		resp.Reply = &r
	}
	return resp
}
