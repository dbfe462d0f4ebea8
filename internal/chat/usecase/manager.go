package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"productivity-assistant/internal/chat"
	"productivity-assistant/internal/chat/repository"
	"productivity-assistant/pkg/apiclient"
	"productivity-assistant/pkg/fetchcache"
	pkgLog "productivity-assistant/pkg/log"
)

// implManager is the message log of one conversation.
//
// Overlapping calls are allowed. A history load that finishes after a
// newer load or a clear started is dropped; replies are appended in the
// order they arrive.
type implManager struct {
	l        pkgLog.Logger
	repo     repository.Repository
	cache    *fetchcache.Cache[[]chat.Message]
	now      func() time.Time
	newID    func() string
	pageSize int
	maxLoad  int
	// pinned managers are registered under sessionID and may not switch.
	pinned bool

	mu         sync.Mutex
	sessionID  string
	messages   []chat.Message
	inflight   int
	err        string
	historyGen uint64
	epoch      uint64 // bumped by ClearHistory
	// promptOf maps a reply id to the id of the local user message it
	// answers, so a history load can drop both once the server has them.
	promptOf map[string]string
}

func (uc *implUseCase) newManager(sessionID string) *implManager {
	return &implManager{
		l:         uc.l,
		repo:      uc.repo,
		cache:     uc.history,
		now:       time.Now,
		newID:     newMessageID,
		pageSize:  uc.cfg.HistoryPageSize,
		maxLoad:   uc.cfg.HistoryMaxMessages,
		sessionID: sessionID,
	}
}

func newMessageID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func (m *implManager) LoadHistory(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return chat.ErrEmptySessionID
	}

	m.mu.Lock()
	if m.pinned && sessionID != m.sessionID {
		m.mu.Unlock()
		return chat.ErrSessionMismatch
	}
	m.historyGen++
	gen, epoch := m.historyGen, m.epoch
	startLen := len(m.messages)
	m.sessionID = sessionID
	m.inflight++
	m.err = ""
	m.mu.Unlock()

	fetched, err := m.cache.Fetch(ctx, sessionID, func(ctx context.Context) ([]chat.Message, error) {
		return m.fetchHistory(ctx, sessionID)
	})

	m.mu.Lock()
	defer m.mu.Unlock()
	m.inflight--

	if gen != m.historyGen || epoch != m.epoch {
		if epoch != m.epoch {
			m.cache.Forget(sessionID)
		}
		m.l.Debugf(ctx, "chat.usecase.LoadHistory: dropping stale result for %s", sessionID)
		return nil
	}
	if err != nil {
		m.l.Warnf(ctx, "chat.usecase.LoadHistory: %v", err)
		m.err = describe(err)
		return err
	}

	// Messages sent while the load was in flight stay after the history
	// unless the server already returned them.
	var tail []chat.Message
	if len(m.messages) > startLen {
		tail = m.dropStored(fetched, m.messages[startLen:])
	}
	m.promptOf = nil
	next := make([]chat.Message, 0, len(fetched)+len(tail))
	next = append(next, fetched...)
	next = append(next, tail...)
	m.messages = next
	if len(tail) > 0 {
		m.cache.Set(sessionID, append([]chat.Message(nil), next...))
	}
	return nil
}

// dropStored removes tail messages whose id is in fetched, together with
// the user messages those replies answer.
func (m *implManager) dropStored(fetched, tail []chat.Message) []chat.Message {
	stored := make(map[string]bool, len(fetched))
	for _, msg := range fetched {
		stored[msg.ID] = true
	}
	drop := make(map[string]bool)
	for _, msg := range tail {
		if stored[msg.ID] {
			drop[msg.ID] = true
			if prompt, ok := m.promptOf[msg.ID]; ok {
				drop[prompt] = true
			}
		}
	}

	kept := make([]chat.Message, 0, len(tail))
	for _, msg := range tail {
		if !drop[msg.ID] {
			kept = append(kept, msg)
		}
	}
	return kept
}

// fetchHistory walks pages from the newest backwards and returns the
// whole history oldest first, capped at maxLoad messages.
func (m *implManager) fetchHistory(ctx context.Context, sessionID string) ([]chat.Message, error) {
	var all []chat.Message
	offset := 0
	for {
		page, err := m.repo.History(ctx, repository.HistoryOptions{
			SessionID: sessionID,
			Limit:     m.pageSize,
			Offset:    offset,
		})
		if err != nil {
			return nil, err
		}
		all = append(append([]chat.Message(nil), page.Messages...), all...)
		offset += len(page.Messages)

		if len(page.Messages) == 0 || len(page.Messages) < m.pageSize ||
			offset >= page.Total || len(all) >= m.maxLoad {
			break
		}
	}
	if len(all) > m.maxLoad {
		all = all[len(all)-m.maxLoad:]
	}
	return all, nil
}

func (m *implManager) SendMessage(ctx context.Context, content string) (chat.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return chat.Message{}, nil
	}

	m.mu.Lock()
	promptID := m.newID()
	m.messages = append(m.messages, chat.Message{
		ID:        promptID,
		Role:      chat.RoleUser,
		Content:   content,
		CreatedAt: m.now(),
	})
	sessionID, epoch := m.sessionID, m.epoch
	m.inflight++
	m.err = ""
	m.mu.Unlock()

	reply, err := m.repo.Send(ctx, repository.SendOptions{SessionID: sessionID, Content: content})

	m.mu.Lock()
	defer m.mu.Unlock()
	m.inflight--

	if err != nil {
		m.l.Warnf(ctx, "chat.usecase.SendMessage: %v", err)
		if epoch == m.epoch {
			m.err = describe(err)
		}
		return chat.Message{}, err
	}

	if reply.ID == "" {
		reply.ID = m.newID()
	}
	if reply.Role == "" {
		reply.Role = chat.RoleAssistant
	}
	if reply.CreatedAt.IsZero() {
		reply.CreatedAt = m.now()
	}
	if epoch != m.epoch {
		// The log was cleared while waiting; the reply belongs to the old one.
		return reply, nil
	}
	m.messages = append(m.messages, reply)
	if m.promptOf == nil {
		m.promptOf = make(map[string]string)
	}
	m.promptOf[reply.ID] = promptID
	if sessionID != "" {
		m.cache.Set(sessionID, append([]chat.Message(nil), m.messages...))
	}
	return reply, nil
}

func (m *implManager) ClearHistory(ctx context.Context) error {
	m.mu.Lock()
	sessionID := m.sessionID
	if sessionID == "" {
		m.mu.Unlock()
		return chat.ErrNoActiveSession
	}
	m.messages = nil
	m.promptOf = nil
	m.epoch++
	m.historyGen++
	m.err = ""
	m.mu.Unlock()

	m.cache.Forget(sessionID)

	if err := m.repo.DeleteHistory(ctx, sessionID); err != nil {
		m.l.Warnf(ctx, "chat.usecase.ClearHistory: %v", err)
		m.mu.Lock()
		m.err = describe(err)
		m.mu.Unlock()
		return err
	}
	return nil
}

func (m *implManager) Messages() []chat.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]chat.Message(nil), m.messages...)
}

func (m *implManager) State() chat.State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stateLocked()
}

func (m *implManager) Snapshot() chat.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return chat.Snapshot{
		State:    m.stateLocked(),
		Messages: append([]chat.Message(nil), m.messages...),
	}
}

func (m *implManager) stateLocked() chat.State {
	return chat.State{
		SessionID: m.sessionID,
		Loading:   m.inflight > 0,
		Err:       m.err,
	}
}

// describe turns err into a message fit for the user.
func describe(err error) string {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "the assistant took too long to answer"
	}
	return err.Error()
}
