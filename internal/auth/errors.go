package auth

import "errors"

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrMissingEmail     = errors.New("email is required")
	ErrMissingCode      = errors.New("no authorization code received")
	ErrAccessDenied     = errors.New("access was denied")
	ErrAuthFailed       = errors.New("authentication failed")
	ErrInvalidState     = errors.New("unknown or expired oauth state")
	ErrNoAccessToken    = errors.New("no access token received")
)
