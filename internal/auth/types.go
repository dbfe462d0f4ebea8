package auth

import (
	"time"

	"productivity-assistant/internal/model"
)

// Session is the credential established by a successful login.
// It lives until Logout or until the backend rejects the token.
type Session struct {
	AccessToken string
	TokenType   string
	User        model.User
	CreatedAt   time.Time
}

// --- UseCase Inputs ---

type LoginInput struct {
	Email    string
	Password string
}

// CompleteGoogleLoginInput mirrors the query string Google redirects back with.
type CompleteGoogleLoginInput struct {
	Code  string
	State string
	Error string
}

// --- UseCase Outputs ---

type GoogleLoginOutput struct {
	AuthURL string
	State   string
}
