package suggestion

import "errors"

var (
	ErrEmptyID            = errors.New("suggestion id is empty")
	ErrSuggestionNotFound = errors.New("suggestion not found")
	ErrActionFailed       = errors.New("suggestion accepted but its action failed")
)
