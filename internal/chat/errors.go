package chat

import "errors"

var (
	ErrEmptySessionID  = errors.New("session id is required")
	ErrNoActiveSession = errors.New("no active session")
	ErrSessionNotFound = errors.New("chat session not found")
	ErrSessionMismatch = errors.New("session is registered under another id")
	ErrEmptyTranscript = errors.New("no transcript to send")
)
