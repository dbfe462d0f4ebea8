package usecase

import (
	"context"
	"strings"

	"productivity-assistant/internal/auth"
	"productivity-assistant/internal/auth/repository"
	"productivity-assistant/internal/model"
)

func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.Session, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return auth.Session{}, auth.ErrMissingEmail
	}

	res, err := uc.repo.Login(ctx, repository.LoginOptions{Email: email, Password: input.Password})
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.Login: repo.Login: %v", err)
		return auth.Session{}, err
	}
	if res.AccessToken == "" {
		return auth.Session{}, auth.ErrNoAccessToken
	}

	return uc.establish(ctx, res), nil
}

func (uc *implUseCase) Me(ctx context.Context) (model.User, error) {
	if _, ok := uc.holder.Current(); !ok {
		return model.User{}, auth.ErrNotAuthenticated
	}

	user, err := uc.repo.Me(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "auth.usecase.Me: repo.Me: %v", err)
		return model.User{}, err
	}
	return user, nil
}

// Logout is idempotent.
func (uc *implUseCase) Logout(ctx context.Context) error {
	if uc.holder.Clear(ctx) {
		uc.l.Infof(ctx, "auth.usecase.Logout: session cleared")
	}
	return nil
}

func (uc *implUseCase) Status() (auth.Session, bool) {
	return uc.holder.Current()
}

func (uc *implUseCase) establish(ctx context.Context, res repository.TokenResult) auth.Session {
	s := auth.Session{
		AccessToken: res.AccessToken,
		TokenType:   res.TokenType,
		User:        res.User,
		CreatedAt:   uc.now(),
	}
	uc.holder.Establish(s)
	uc.l.Infof(ctx, "auth.usecase: session established for %s", s.User.Email)
	return s
}
