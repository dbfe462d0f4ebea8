package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	authHTTP "productivity-assistant/internal/auth/delivery/http"
	calendarHTTP "productivity-assistant/internal/calendar/delivery/http"
	chatHTTP "productivity-assistant/internal/chat/delivery/http"
	dashboardHTTP "productivity-assistant/internal/dashboard/delivery/http"
	emailHTTP "productivity-assistant/internal/email/delivery/http"
	searchHTTP "productivity-assistant/internal/search/delivery/http"
	suggestionHTTP "productivity-assistant/internal/suggestion/delivery/http"
	taskHTTP "productivity-assistant/internal/task/delivery/http"
	voiceHTTP "productivity-assistant/internal/voice/delivery/http"
)

// Pattern for each domain: build the HTTP handler from its usecase, then
// register its routes on a group named after the resource.

func (srv HTTPServer) setupAuthDomain(ctx context.Context, api *gin.RouterGroup) {
	h := authHTTP.New(srv.l, srv.authUC)
	authHTTP.RegisterRoutes(api.Group("/auth"), h)
	srv.l.Infof(ctx, "Auth routes registered at /api/v1/auth")
}

func (srv HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup) {
	var vi chatHTTP.VoiceInput
	if srv.voiceUC != nil {
		vi = srv.voiceUC
	}
	h := chatHTTP.New(srv.l, srv.chatUC, vi)
	chatHTTP.RegisterRoutes(api.Group("/chat"), h)
	srv.l.Infof(ctx, "Chat routes registered at /api/v1/chat")
}

func (srv HTTPServer) setupVoiceDomain(ctx context.Context, api *gin.RouterGroup) {
	if srv.voiceUC == nil {
		srv.l.Infof(ctx, "Voice not configured, skipping voice routes")
		return
	}
	h := voiceHTTP.New(srv.l, srv.voiceUC)
	voiceHTTP.RegisterRoutes(api.Group("/voice"), h)
	srv.l.Infof(ctx, "Voice routes registered at /api/v1/voice")
}

func (srv HTTPServer) setupWorkspaceDomains(ctx context.Context, api *gin.RouterGroup) {
	if srv.taskUC != nil {
		taskHTTP.RegisterRoutes(api.Group("/tasks"), taskHTTP.New(srv.l, srv.taskUC))
	}
	if srv.calendarUC != nil {
		calendarHTTP.RegisterRoutes(api.Group("/calendar"), calendarHTTP.New(srv.l, srv.calendarUC))
	}
	if srv.emailUC != nil {
		emailHTTP.RegisterRoutes(api.Group("/email"), emailHTTP.New(srv.l, srv.emailUC))
	}
	if srv.searchUC != nil {
		searchHTTP.RegisterRoutes(api.Group("/search"), searchHTTP.New(srv.l, srv.searchUC))
	}
	if srv.suggestionUC != nil {
		suggestionHTTP.RegisterRoutes(api.Group("/suggestions"), suggestionHTTP.New(srv.l, srv.suggestionUC))
	}
	if srv.dashboardUC != nil {
		dashboardHTTP.RegisterRoutes(api.Group("/dashboard"), dashboardHTTP.New(srv.l, srv.dashboardUC))
	}
	srv.l.Infof(ctx, "Workspace routes registered")
}
