package search

import "errors"

var (
	ErrEmptyQuery   = errors.New("search query is empty")
	ErrQueryTooLong = errors.New("search query is too long")
)
