package rest

import "productivity-assistant/internal/model"

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

type googleCallbackReq struct {
	Code  string `json:"code"`
	State string `json:"state,omitempty"`
}

type tokenResp struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	User        *userDTO `json:"user"`
}

type googleLoginResp struct {
	AuthURL string `json:"auth_url"`
}

type userDTO struct {
	ID              int64  `json:"id"`
	Email           string `json:"email"`
	Name            string `json:"name"`
	GoogleConnected bool   `json:"google_connected"`
}

func (u userDTO) toModel() model.User {
	return model.User{
		ID:              u.ID,
		Email:           u.Email,
		Name:            u.Name,
		GoogleConnected: u.GoogleConnected,
	}
}
