package calendar

import "errors"

var (
	ErrEmptyTitle   = errors.New("event title is empty")
	ErrMissingStart = errors.New("event start time is required")
	ErrInvalidRange = errors.New("event ends before it starts")
	ErrInvalidEmail = errors.New("invalid attendee email")
)
