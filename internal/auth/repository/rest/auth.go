package rest

import (
	"context"
	"fmt"

	"productivity-assistant/internal/auth/repository"
	"productivity-assistant/internal/model"
)

func (r *implRepository) Login(ctx context.Context, opt repository.LoginOptions) (repository.TokenResult, error) {
	var resp tokenResp
	if err := r.public.Post(ctx, "/auth/login", loginReq{Email: opt.Email, Password: opt.Password}, &resp); err != nil {
		return repository.TokenResult{}, fmt.Errorf("auth.rest.Login: %w", err)
	}
	return toTokenResult(resp), nil
}

func (r *implRepository) GoogleLoginURL(ctx context.Context) (string, error) {
	var resp googleLoginResp
	if err := r.public.Get(ctx, "/auth/google/login", nil, &resp); err != nil {
		return "", fmt.Errorf("auth.rest.GoogleLoginURL: %w", err)
	}
	return resp.AuthURL, nil
}

func (r *implRepository) GoogleCallback(ctx context.Context, opt repository.GoogleCallbackOptions) (repository.TokenResult, error) {
	var resp tokenResp
	body := googleCallbackReq{Code: opt.Code, State: opt.State}
	if err := r.public.Post(ctx, "/auth/google/callback", body, &resp); err != nil {
		return repository.TokenResult{}, fmt.Errorf("auth.rest.GoogleCallback: %w", err)
	}
	return toTokenResult(resp), nil
}

func (r *implRepository) Me(ctx context.Context) (model.User, error) {
	var resp userDTO
	if err := r.authed.Get(ctx, "/auth/me", nil, &resp); err != nil {
		return model.User{}, fmt.Errorf("auth.rest.Me: %w", err)
	}
	return resp.toModel(), nil
}

func toTokenResult(resp tokenResp) repository.TokenResult {
	res := repository.TokenResult{
		AccessToken: resp.AccessToken,
		TokenType:   resp.TokenType,
	}
	if resp.User != nil {
		res.User = resp.User.toModel()
	}
	return res
}
