package repository

// SendOptions holds the parameters of a chat turn.
type SendOptions struct {
	SessionID string
	Content   string
}

// HistoryOptions selects a page of a session's history.
type HistoryOptions struct {
	SessionID string
	Limit     int // page size (backend default 50)
	Offset    int // messages to skip, counted from the newest
}
