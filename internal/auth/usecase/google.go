package usecase

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"productivity-assistant/internal/auth"
	"productivity-assistant/internal/auth/repository"
)

// StartGoogleLogin fetches the consent URL and registers the state value
// the callback must echo back. A state already present in the backend's
// URL is adopted as-is.
func (uc *implUseCase) StartGoogleLogin(ctx context.Context) (auth.GoogleLoginOutput, error) {
	raw, err := uc.repo.GoogleLoginURL(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.StartGoogleLogin: repo.GoogleLoginURL: %v", err)
		return auth.GoogleLoginOutput{}, err
	}

	authURL, err := url.Parse(raw)
	if err != nil || authURL.Host == "" {
		return auth.GoogleLoginOutput{}, fmt.Errorf("%w: invalid auth url %q", auth.ErrAuthFailed, raw)
	}

	q := authURL.Query()
	state := q.Get("state")
	if state == "" {
		state = uuid.NewString()
		q.Set("state", state)
		authURL.RawQuery = q.Encode()
	}
	uc.states.Add(state, struct{}{})

	return auth.GoogleLoginOutput{AuthURL: authURL.String(), State: state}, nil
}

// CompleteGoogleLogin exchanges the redirect parameters for a session.
// Each state value is accepted once.
func (uc *implUseCase) CompleteGoogleLogin(ctx context.Context, input auth.CompleteGoogleLoginInput) (auth.Session, error) {
	if input.Error != "" {
		if input.Error == "access_denied" {
			return auth.Session{}, auth.ErrAccessDenied
		}
		return auth.Session{}, auth.ErrAuthFailed
	}
	if input.Code == "" {
		return auth.Session{}, auth.ErrMissingCode
	}
	if _, ok := uc.states.Get(input.State); !ok || input.State == "" {
		return auth.Session{}, auth.ErrInvalidState
	}
	uc.states.Remove(input.State)

	res, err := uc.repo.GoogleCallback(ctx, repository.GoogleCallbackOptions{Code: input.Code, State: input.State})
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.CompleteGoogleLogin: repo.GoogleCallback: %v", err)
		return auth.Session{}, err
	}
	if res.AccessToken == "" {
		return auth.Session{}, auth.ErrNoAccessToken
	}

	return uc.establish(ctx, res), nil
}
