package model

import "time"

// Email is a message header as listed in the inbox.
type Email struct {
	ID      string
	Subject string
	Sender  string
	Snippet string
	Date    time.Time
	IsRead  bool
	Labels  []string
}

// EmailSummary is the backend's digest of the inbox.
type EmailSummary struct {
	TotalUnread      int
	ImportantEmails  int
	Summary          string
	SuggestedActions []string
}
