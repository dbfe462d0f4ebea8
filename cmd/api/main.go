package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"productivity-assistant/config"
	_ "productivity-assistant/docs" // Swagger docs
	"productivity-assistant/internal/auth"
	authRepo "productivity-assistant/internal/auth/repository/rest"
	authUC "productivity-assistant/internal/auth/usecase"
	calendarRepo "productivity-assistant/internal/calendar/repository"
	googleCalendarRepo "productivity-assistant/internal/calendar/repository/google"
	restCalendarRepo "productivity-assistant/internal/calendar/repository/rest"
	calendarUC "productivity-assistant/internal/calendar/usecase"
	chatRepo "productivity-assistant/internal/chat/repository/rest"
	chatUC "productivity-assistant/internal/chat/usecase"
	"productivity-assistant/internal/dashboard"
	dashboardUC "productivity-assistant/internal/dashboard/usecase"
	emailRepo "productivity-assistant/internal/email/repository/rest"
	emailUC "productivity-assistant/internal/email/usecase"
	"productivity-assistant/internal/httpserver"
	"productivity-assistant/internal/middleware"
	searchRepo "productivity-assistant/internal/search/repository/rest"
	searchUC "productivity-assistant/internal/search/usecase"
	suggestionRepo "productivity-assistant/internal/suggestion/repository/rest"
	suggestionUC "productivity-assistant/internal/suggestion/usecase"
	taskRepo "productivity-assistant/internal/task/repository/rest"
	taskUC "productivity-assistant/internal/task/usecase"
	voiceRepo "productivity-assistant/internal/voice/repository/rest"
	voiceUC "productivity-assistant/internal/voice/usecase"
	"productivity-assistant/pkg/apiclient"
	"productivity-assistant/pkg/datemath"
	"productivity-assistant/pkg/gcalendar"
	"productivity-assistant/pkg/log"
)

// @title       Productivity Assistant Companion API
// @description Local companion for the productivity assistant: chat sessions, voice input, tasks, calendar, email, web search and suggestions.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Productivity Assistant companion...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Backend URL: %s", cfg.Backend.BaseURL)

	// 3. Backend clients. The authed client reads the bearer token from the
	// holder and drops the session when the backend answers 401.
	holder := auth.NewHolder()

	publicClient, err := apiclient.New(apiclient.Config{
		BaseURL:         cfg.Backend.BaseURL,
		Timeout:         cfg.Backend.Timeout,
		RateLimitPerSec: cfg.Backend.RateLimitPerSec,
		Burst:           cfg.Backend.Burst,
	})
	if err != nil {
		logger.Error(ctx, "Failed to create backend client: ", err)
		return
	}

	authedClient, err := apiclient.New(apiclient.Config{
		BaseURL:         cfg.Backend.BaseURL,
		Timeout:         cfg.Backend.Timeout,
		RateLimitPerSec: cfg.Backend.RateLimitPerSec,
		Burst:           cfg.Backend.Burst,
		TokenSource:     holder,
		OnUnauthorized: func(ctx context.Context) {
			if holder.Clear(ctx) {
				logger.Warn(ctx, "Backend rejected the session token, logged out")
			}
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to create authenticated backend client: ", err)
		return
	}

	// 4. DateMath parser
	dateMathParser, err := datemath.NewParser(cfg.Calendar.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Calendar.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 5. Auth
	authUsecase := authUC.New(logger, authRepo.New(logger, publicClient, authedClient), holder, cfg.Auth.OAuthStateTTL)

	// 6. Chat
	chatUsecase := chatUC.New(logger, chatRepo.New(logger, authedClient), chatUC.Config{
		MaxSessions:        cfg.Chat.MaxSessions,
		SessionTTL:         cfg.Chat.SessionTTL,
		HistoryPageSize:    cfg.Chat.HistoryPageSize,
		HistoryMaxMessages: cfg.Chat.HistoryMaxMessages,
		HistoryCacheTTL:    cfg.Chat.HistoryCacheTTL,
	})

	// 7. Voice
	voiceUsecase := voiceUC.New(logger, voiceRepo.New(logger, authedClient), newVoiceDevices(ctx, logger, cfg.Voice), voiceUC.Config{
		TranscribeTimeout: cfg.Voice.TranscribeTimeout,
		Voice:             cfg.Voice.SynthVoice,
		Speed:             cfg.Voice.SynthSpeed,
	})
	defer voiceUsecase.Close()

	// 8. Workspace: tasks, calendar, email, search, suggestions
	taskUsecase := taskUC.New(logger, taskRepo.New(logger, authedClient))

	calRepo, err := newCalendarRepository(ctx, logger, cfg.Calendar, authedClient)
	if err != nil {
		logger.Error(ctx, "Failed to initialize calendar: ", err)
		return
	}
	calendarUsecase := calendarUC.New(logger, calRepo, dateMathParser)

	emailUsecase := emailUC.New(logger, emailRepo.New(logger, authedClient))

	searchUsecase := searchUC.New(logger, searchRepo.New(logger, authedClient))

	suggestionUsecase := suggestionUC.New(logger, suggestionRepo.New(logger, authedClient), taskUsecase, calendarUsecase, suggestionUC.Config{})

	// 9. Dashboard
	dashboardUsecase := dashboardUC.New(logger, dashboard.Sources{
		Tasks:       taskUsecase,
		Events:      calendarUsecase,
		Emails:      emailUsecase,
		Suggestions: suggestionUsecase,
	}, dateMathParser, dashboardUC.Config{
		CacheTTL:       cfg.Dashboard.CacheTTL,
		SectionTimeout: cfg.Dashboard.SectionTimeout,
	})

	// Logging out ends every conversation and forgets workspace data.
	holder.OnLogout(func(ctx context.Context) {
		chatUsecase.Reset(ctx)
		dashboardUsecase.Invalidate()
		voiceUsecase.Cancel(ctx)
	})

	// 10. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		Middleware:      middleware.New(logger, holder, cfg.Middleware.RateLimitPerMin),
		Auth:            authUsecase,
		Chat:            chatUsecase,
		Voice:           voiceUsecase,
		Task:            taskUsecase,
		Calendar:        calendarUsecase,
		Email:           emailUsecase,
		Search:          searchUsecase,
		Suggestion:      suggestionUsecase,
		Dashboard:       dashboardUsecase,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 11. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// newCalendarRepository picks the calendar provider. The google provider
// talks to Google Calendar directly with local credentials.
func newCalendarRepository(ctx context.Context, logger log.Logger, cfg config.CalendarConfig, client *apiclient.Client) (calendarRepo.Repository, error) {
	if cfg.Provider != config.CalendarProviderGoogle {
		logger.Info(ctx, "Calendar provider: backend")
		return restCalendarRepo.New(logger, client), nil
	}

	gcal, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.CredentialsPath)
	if err != nil {
		logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
		return nil, fmt.Errorf("google calendar: %w", err)
	}
	logger.Info(ctx, "Calendar provider: Google Calendar")
	return googleCalendarRepo.New(logger, gcal, googleCalendarRepo.Config{
		CalendarID:  cfg.CalendarID,
		Timezone:    cfg.Timezone,
		SyncHorizon: cfg.SyncHorizon,
	}), nil
}
