package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"productivity-assistant/internal/auth"
	"productivity-assistant/internal/calendar"
	"productivity-assistant/internal/chat"
	"productivity-assistant/internal/dashboard"
	"productivity-assistant/internal/email"
	"productivity-assistant/internal/middleware"
	"productivity-assistant/internal/search"
	"productivity-assistant/internal/suggestion"
	"productivity-assistant/internal/task"
	"productivity-assistant/internal/voice"
	"productivity-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	mw              middleware.Middleware

	// Session
	authUC auth.UseCase

	// Assistant
	chatUC  chat.UseCase
	voiceUC voice.UseCase

	// Workspace
	taskUC       task.UseCase
	calendarUC   calendar.UseCase
	emailUC      email.UseCase
	searchUC     search.UseCase
	suggestionUC suggestion.UseCase
	dashboardUC  dashboard.UseCase
}

// Config is the dependency bag passed to New(). Voice may be nil when no
// capture or speech device is configured.
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	Middleware      middleware.Middleware

	Auth       auth.UseCase
	Chat       chat.UseCase
	Voice      voice.UseCase
	Task       task.UseCase
	Calendar   calendar.UseCase
	Email      email.UseCase
	Search     search.UseCase
	Suggestion suggestion.UseCase
	Dashboard  dashboard.UseCase
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		mw:              cfg.Middleware,
		authUC:          cfg.Auth,
		chatUC:          cfg.Chat,
		voiceUC:         cfg.Voice,
		taskUC:          cfg.Task,
		calendarUC:      cfg.Calendar,
		emailUC:         cfg.Email,
		searchUC:        cfg.Search,
		suggestionUC:    cfg.Suggestion,
		dashboardUC:     cfg.Dashboard,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = 10 * time.Second
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.authUC == nil {
		return errors.New("auth usecase is required")
	}
	if srv.chatUC == nil {
		return errors.New("chat usecase is required")
	}
	return nil
}
