package auth

import (
	"context"

	"productivity-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Login(ctx context.Context, input LoginInput) (Session, error)
	StartGoogleLogin(ctx context.Context) (GoogleLoginOutput, error)
	CompleteGoogleLogin(ctx context.Context, input CompleteGoogleLoginInput) (Session, error)
	Me(ctx context.Context) (model.User, error)
	Logout(ctx context.Context) error
	Status() (Session, bool)
}
