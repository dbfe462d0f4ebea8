package repository

import (
	"context"

	"productivity-assistant/internal/model"
)

// Repository is the backend auth API.
type Repository interface {
	Login(ctx context.Context, opt LoginOptions) (TokenResult, error)
	GoogleLoginURL(ctx context.Context) (string, error)
	GoogleCallback(ctx context.Context, opt GoogleCallbackOptions) (TokenResult, error)
	Me(ctx context.Context) (model.User, error)
}
