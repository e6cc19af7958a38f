package command

import (
	"context"
	"sync"

	"github.com/Rich-Wilkyness/social-media-api/internal/repository"
	"github.com/Rich-Wilkyness/social-media-api/internal/service"
	"github.com/Rich-Wilkyness/social-media-api/shared/logger"
	"github.com/Rich-Wilkyness/social-media-api/shared/models"
)

// memAccounts is an in-memory account table.
type memAccounts struct {
	mu      sync.Mutex
	byID    map[int]models.Account
	nextID  int
	creates int

	existsErr error
	createErr error
}

func newMemAccounts() *memAccounts {
	return &memAccounts{byID: make(map[int]models.Account), nextID: 1}
}

func (m *memAccounts) Create(_ context.Context, a *models.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creates++
	if m.createErr != nil {
		return m.createErr
	}
	for _, existing := range m.byID {
		if existing.Username == a.Username {
			return repository.ErrUsernameTaken
		}
	}
	a.AccountID = m.nextID
	m.nextID++
	m.byID[a.AccountID] = *a
	return nil
}

func (m *memAccounts) ExistsByUsername(_ context.Context, username string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.existsErr != nil {
		return false, m.existsErr
	}
	for _, a := range m.byID {
		if a.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (m *memAccounts) ExistsByID(_ context.Context, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.existsErr != nil {
		return false, m.existsErr
	}
	_, ok := m.byID[id]
	return ok, nil
}

// memMessages is an in-memory message table plus a view cache.
type memMessages struct {
	mu      sync.Mutex
	rows    map[int]models.Message
	cached  map[int]models.Message
	deleted map[int]bool
	nextID  int

	createErr error
	updateErr error
	readErr   error
	// deleteRace makes Delete behave as if another request removed the row
	// between the snapshot read and the delete.
	deleteRace bool
	deletes    int
}

func newMemMessages() *memMessages {
	return &memMessages{
		rows:    make(map[int]models.Message),
		cached:  make(map[int]models.Message),
		deleted: make(map[int]bool),
		nextID:  1,
	}
}

func (m *memMessages) Create(_ context.Context, msg *models.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	msg.MessageID = m.nextID
	m.nextID++
	m.rows[msg.MessageID] = *msg
	return nil
}

func (m *memMessages) UpdateText(_ context.Context, id int, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateErr != nil {
		return m.updateErr
	}
	row, ok := m.rows[id]
	if !ok {
		return repository.ErrNotFound
	}
	row.MessageText = text
	m.rows[id] = row
	return nil
}

func (m *memMessages) Delete(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletes++
	if m.deleteRace {
		delete(m.rows, id)
		return repository.ErrNotFound
	}
	if _, ok := m.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *memMessages) GetByIDFromStore(_ context.Context, id int) (*models.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.readErr != nil {
		return nil, m.readErr
	}
	row, ok := m.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &row, nil
}

func (m *memMessages) CacheMessageView(_ context.Context, msg *models.Message) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleted[msg.MessageID] {
		return
	}
	m.cached[msg.MessageID] = *msg
}

func (m *memMessages) InvalidateMessageView(_ context.Context, id int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.cached, id)
}

func (m *memMessages) MarkMessageDeleted(_ context.Context, id int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.cached, id)
	m.deleted[id] = true
}

type publishedEvent struct {
	stream    string
	eventType string
	data      any
}

type fakePublisher struct {
	mu     sync.Mutex
	events []publishedEvent
	err    error
}

func (p *fakePublisher) Publish(_ context.Context, stream, eventType string, data any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, publishedEvent{stream: stream, eventType: eventType, data: data})
	return nil
}

func (p *fakePublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.eventType)
	}
	return out
}

type countingRecorder struct {
	mu     sync.Mutex
	counts map[string]int
}

func (r *countingRecorder) RecordStoreFailure(op string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.counts == nil {
		r.counts = make(map[string]int)
	}
	r.counts[op]++
}

func testReporter(rec service.FailureRecorder) *service.Reporter {
	return service.NewReporter(logger.Discard(), rec)
}

func accountFixture(id int, username string) models.Account {
	return models.Account{AccountID: id, Username: username, Password: "1234"}
}
