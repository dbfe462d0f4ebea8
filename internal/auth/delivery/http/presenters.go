package http

import (
	"productivity-assistant/internal/auth"
	"productivity-assistant/internal/model"
	"productivity-assistant/pkg/response"
)

// --- Request DTOs ---

type loginReq struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password"`
}

func (r loginReq) toInput() auth.LoginInput {
	return auth.LoginInput{Email: r.Email, Password: r.Password}
}

type googleCallbackReq struct {
	Code  string `form:"code"`
	State string `form:"state"`
	Error string `form:"error"`
}

func (r googleCallbackReq) toInput() auth.CompleteGoogleLoginInput {
	return auth.CompleteGoogleLoginInput{Code: r.Code, State: r.State, Error: r.Error}
}

// --- Response DTOs ---

type userResp struct {
	ID              int64  `json:"id"`
	Email           string `json:"email"`
	Name            string `json:"name"`
	GoogleConnected bool   `json:"google_connected"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:              u.ID,
		Email:           u.Email,
		Name:            u.Name,
		GoogleConnected: u.GoogleConnected,
	}
}

// sessionResp never carries the access token; it stays inside the process.
type sessionResp struct {
	Authenticated bool               `json:"authenticated"`
	User          *userResp          `json:"user,omitempty"`
	Since         *response.DateTime `json:"since,omitempty"`
}

func newSessionResp(s auth.Session, ok bool) sessionResp {
	if !ok {
		return sessionResp{}
	}
	u := newUserResp(s.User)
	since := response.DateTime(s.CreatedAt)
	return sessionResp{Authenticated: true, User: &u, Since: &since}
}

type googleStartResp struct {
	AuthURL string `json:"auth_url"`
	State   string `json:"state"`
}

func newGoogleStartResp(out auth.GoogleLoginOutput) googleStartResp {
	return googleStartResp{AuthURL: out.AuthURL, State: out.State}
}
