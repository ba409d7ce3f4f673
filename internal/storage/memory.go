package storage

import (
	"sync"

	"github.com/Franciscyber-J/habiticon-gyn-bot/internal/models"
)

// MemoryStore keeps sessions and the lead archive in memory. Sessions always
// live here; the archive side is only used when no database is configured.
type MemoryStore struct {
	sessions map[string]*models.Session
	leads    []*models.LeadRecord

	sessionMu sync.RWMutex
	leadMu    sync.RWMutex
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*models.Session),
	}
}

// GetSession returns the session for a chat, if one exists
func (m *MemoryStore) GetSession(chatID string) (*models.Session, bool) {
	m.sessionMu.RLock()
	defer m.sessionMu.RUnlock()

	s, ok := m.sessions[chatID]
	return s, ok
}

// SetSession stores or replaces the session for a chat
func (m *MemoryStore) SetSession(chatID string, session *models.Session) {
	m.sessionMu.Lock()
	defer m.sessionMu.Unlock()

	m.sessions[chatID] = session
}

// DeleteSession removes the session for a chat
func (m *MemoryStore) DeleteSession(chatID string) {
	m.sessionMu.Lock()
	defer m.sessionMu.Unlock()

	delete(m.sessions, chatID)
}

// SessionIDs returns a snapshot of all chat ids with a live session
func (m *MemoryStore) SessionIDs() []string {
	m.sessionMu.RLock()
	defer m.sessionMu.RUnlock()

	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return ids
}

// SessionCount returns the number of live sessions
func (m *MemoryStore) SessionCount() int {
	m.sessionMu.RLock()
	defer m.sessionMu.RUnlock()

	return len(m.sessions)
}

// SaveLead appends a delivered lead to the in-memory archive
func (m *MemoryStore) SaveLead(lead *models.LeadRecord) error {
	m.leadMu.Lock()
	defer m.leadMu.Unlock()

	m.leads = append(m.leads, lead)
	return nil
}

// CountLeads returns the number of archived leads
func (m *MemoryStore) CountLeads() (int64, error) {
	m.leadMu.RLock()
	defer m.leadMu.RUnlock()

	return int64(len(m.leads)), nil
}
