package chat

import "time"

// Role is who authored a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Message is one entry of a session's log. Messages are never edited
// after they are appended.
type Message struct {
	ID        string
	Role      Role
	Content   string
	CreatedAt time.Time
	// QuickReplies are follow-up prompts the assistant offered with this reply.
	QuickReplies []QuickReply
}

// QuickReply is a canned follow-up; Action is the text to send when picked.
type QuickReply struct {
	Title  string
	Action string
}

// State is the observable status of a session.
type State struct {
	SessionID string
	Loading   bool
	Err       string
}

// Snapshot is a consistent copy of a session's log and state.
type Snapshot struct {
	State
	Messages []Message
}

// HistoryPage is one page of server-side history, oldest first.
type HistoryPage struct {
	Messages []Message
	Total    int
}
