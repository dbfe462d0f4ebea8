package repository

import "productivity-assistant/internal/model"

type LoginOptions struct {
	Email    string
	Password string
}

type GoogleCallbackOptions struct {
	Code  string
	State string
}

// TokenResult is what a successful login exchange yields.
// AccessToken is empty when the backend accepted the call but issued no token.
type TokenResult struct {
	AccessToken string
	TokenType   string
	User        model.User
}
