package http

import (
	"github.com/gin-gonic/gin"

	"productivity-assistant/pkg/response"
)

// Login godoc
// @Summary     Log in with email and password
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Backend error"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	s, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Login: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSessionResp(s, true))
}

// StartGoogle godoc
// @Summary     Begin Google sign-in
// @Description Returns the consent URL to open in a popup, with the state it carries.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} googleStartResp
// @Failure     502 {object} response.Resp "Backend error"
// @Router      /api/v1/auth/google/start [GET]
func (h *handler) StartGoogle(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.StartGoogleLogin(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.StartGoogleLogin: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newGoogleStartResp(out))
}

// GoogleCallback godoc
// @Summary     Finish Google sign-in
// @Description Redirect target of the consent popup.
// @Tags        Auth
// @Produce     json
// @Param       code  query string false "Authorization code"
// @Param       state query string false "State issued by /auth/google/start"
// @Param       error query string false "Provider error"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Access denied"
// @Router      /api/v1/auth/google/callback [GET]
func (h *handler) GoogleCallback(c *gin.Context) {
	ctx := c.Request.Context()

	var req googleCallbackReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	s, err := h.uc.CompleteGoogleLogin(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.CompleteGoogleLogin: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSessionResp(s, true))
}

// Me godoc
// @Summary     Current user
// @Tags        Auth
// @Produce     json
// @Success     200 {object} userResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	u, err := h.uc.Me(ctx)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newUserResp(u))
}

// Status godoc
// @Summary     Session status
// @Tags        Auth
// @Produce     json
// @Success     200 {object} sessionResp
// @Router      /api/v1/auth/status [GET]
func (h *handler) Status(c *gin.Context) {
	response.OK(c, newSessionResp(h.uc.Status()))
}

// Logout godoc
// @Summary     Log out
// @Description Drops the session and every chat session bound to it.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Logout(ctx); err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
