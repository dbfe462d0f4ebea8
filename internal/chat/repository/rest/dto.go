package rest

import (
	"productivity-assistant/internal/chat"
	"productivity-assistant/pkg/apiclient"
)

type sendReq struct {
	Content   string `json:"content"`
	SessionID string `json:"session_id,omitempty"`
}

// messageDTO is the backend ChatResponse shape.
type messageDTO struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Content     string          `json:"content"`
	Timestamp   apiclient.Time  `json:"timestamp"`
	Suggestions []quickReplyDTO `json:"suggestions"`
}

type quickReplyDTO struct {
	Title  string `json:"title"`
	Action string `json:"action"`
}

type historyResp struct {
	Messages []messageDTO `json:"messages"`
	Total    int          `json:"total"`
}

func (m messageDTO) toDomain() chat.Message {
	role := chat.Role(m.Type)
	switch role {
	case chat.RoleUser, chat.RoleAssistant, chat.RoleSystem:
	default:
		role = chat.RoleAssistant
	}

	msg := chat.Message{
		ID:        m.ID,
		Role:      role,
		Content:   m.Content,
		CreatedAt: m.Timestamp.Time,
	}
	for _, s := range m.Suggestions {
		if s.Action == "" && s.Title == "" {
			continue
		}
		msg.QuickReplies = append(msg.QuickReplies, chat.QuickReply{Title: s.Title, Action: s.Action})
	}
	return msg
}
