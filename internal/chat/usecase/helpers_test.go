package usecase

import (
	"context"
	"sync"
	"time"

	"productivity-assistant/internal/chat"
	"productivity-assistant/internal/chat/repository"
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

// Mock chat repository for testing
type mockRepo struct {
	mu sync.Mutex

	sendFn    func(ctx context.Context, opt repository.SendOptions) (chat.Message, error)
	historyFn func(ctx context.Context, opt repository.HistoryOptions) (chat.HistoryPage, error)
	deleteErr error

	sent        []repository.SendOptions
	historyOpts []repository.HistoryOptions
	deleted     []string
}

func (m *mockRepo) Send(ctx context.Context, opt repository.SendOptions) (chat.Message, error) {
	m.mu.Lock()
	m.sent = append(m.sent, opt)
	fn := m.sendFn
	m.mu.Unlock()
	if fn == nil {
		return chat.Message{ID: "reply", Role: chat.RoleAssistant, Content: "ok"}, nil
	}
	return fn(ctx, opt)
}

func (m *mockRepo) History(ctx context.Context, opt repository.HistoryOptions) (chat.HistoryPage, error) {
	m.mu.Lock()
	m.historyOpts = append(m.historyOpts, opt)
	fn := m.historyFn
	m.mu.Unlock()
	if fn == nil {
		return chat.HistoryPage{}, nil
	}
	return fn(ctx, opt)
}

func (m *mockRepo) DeleteHistory(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleted = append(m.deleted, sessionID)
	return m.deleteErr
}

// pagedHistory serves msgs the way the backend pages them: offsets count
// from the newest message, each page is oldest first.
func pagedHistory(msgs []chat.Message) func(ctx context.Context, opt repository.HistoryOptions) (chat.HistoryPage, error) {
	return func(ctx context.Context, opt repository.HistoryOptions) (chat.HistoryPage, error) {
		end := len(msgs) - opt.Offset
		if end < 0 {
			end = 0
		}
		start := end - opt.Limit
		if start < 0 {
			start = 0
		}
		return chat.HistoryPage{
			Messages: append([]chat.Message(nil), msgs[start:end]...),
			Total:    len(msgs),
		}, nil
	}
}

func newTestUseCase(repo *mockRepo, cfg Config) *implUseCase {
	return New(&mockLogger{}, repo, cfg).(*implUseCase)
}

func newTestManager(repo *mockRepo, sessionID string) *implManager {
	uc := newTestUseCase(repo, Config{})
	m := uc.newManager(sessionID)
	fixed := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return fixed }
	return m
}
