package usecase

import (
	"context"

	"productivity-assistant/internal/auth/repository"
	"productivity-assistant/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock auth repository for testing
type mockRepo struct {
	loginResult    repository.TokenResult
	loginErr       error
	authURL        string
	callbackResult repository.TokenResult
	callbackErr    error
	callbackCalls  int
	user           model.User
	meErr          error
}

func (m *mockRepo) Login(ctx context.Context, opt repository.LoginOptions) (repository.TokenResult, error) {
	return m.loginResult, m.loginErr
}

func (m *mockRepo) GoogleLoginURL(ctx context.Context) (string, error) {
	return m.authURL, nil
}

func (m *mockRepo) GoogleCallback(ctx context.Context, opt repository.GoogleCallbackOptions) (repository.TokenResult, error) {
	m.callbackCalls++
	return m.callbackResult, m.callbackErr
}

func (m *mockRepo) Me(ctx context.Context) (model.User, error) {
	return m.user, m.meErr
}
