package storage

import (
	"sync"

	"github.com/Franciscyber-J/habiticon-gyn-bot/internal/models"
)

// SessionStore holds per-chat conversation state. Process-lifetime only; a
// restart loses all in-flight conversations.
type SessionStore interface {
	GetSession(chatID string) (*models.Session, bool)
	SetSession(chatID string, session *models.Session)
	DeleteSession(chatID string)
	SessionIDs() []string
	SessionCount() int
}

// LeadArchive records leads that were delivered to the CRM webhook
type LeadArchive interface {
	SaveLead(lead *models.LeadRecord) error
	CountLeads() (int64, error)
}

// ChatLocks serializes processing per chat id so that live message handling
// and the recapture sweep never interleave within the same conversation.
type ChatLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewChatLocks creates an empty lock set
func NewChatLocks() *ChatLocks {
	return &ChatLocks{locks: make(map[string]*sync.Mutex)}
}

func (c *ChatLocks) lockFor(chatID string) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()

	l, ok := c.locks[chatID]
	if !ok {
		l = &sync.Mutex{}
		c.locks[chatID] = l
	}
	return l
}

// Lock acquires the per-chat mutex, creating it on first use
func (c *ChatLocks) Lock(chatID string) {
	c.lockFor(chatID).Lock()
}

// Unlock releases the per-chat mutex
func (c *ChatLocks) Unlock(chatID string) {
	c.lockFor(chatID).Unlock()
}
