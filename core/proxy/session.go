package proxy

import (
	"errors"
	"sync"
	"time"

	"speedtab/core/markup"

	"github.com/google/uuid"
)

var (
	// ErrDisconnected is returned when pushing to a session that has left.
	ErrDisconnected = errors.New("player disconnected")
	// ErrUnknownPlayer is returned for player IDs the registry does not know.
	ErrUnknownPlayer = errors.New("unknown player")
)

// TabList is the header and footer last pushed to a session.
type TabList struct {
	Header    markup.Text `json:"header"`
	Footer    markup.Text `json:"footer"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// Session is one connected player.
type Session struct {
	id       uuid.UUID
	username string

	mu        sync.RWMutex
	server    string
	tab       TabList
	connected bool
}

func newSession(id uuid.UUID, username string) *Session {
	return &Session{id: id, username: username, connected: true}
}

// ID returns the player's stable identity.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Username returns the player's name.
func (s *Session) Username() string {
	return s.username
}

// CurrentServer returns the backend server the player is on. It reports
// false while the player is not connected to any backend.
func (s *Session) CurrentServer() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.server, s.server != ""
}

// Connected reports whether the player is still online.
func (s *Session) Connected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.connected
}

// SendPlayerListHeaderAndFooter sets the player list header and footer.
// Delivery is not acknowledged.
func (s *Session) SendPlayerListHeaderAndFooter(header, footer markup.Text) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.connected {
		return ErrDisconnected
	}
	s.tab = TabList{Header: header, Footer: footer, UpdatedAt: time.Now()}
	return nil
}

// TabList returns the header and footer last pushed to the player.
func (s *Session) TabList() TabList {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tab
}

func (s *Session) setServer(server string) (previous string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.connected {
		return "", ErrDisconnected
	}
	previous = s.server
	s.server = server
	return previous, nil
}

func (s *Session) disconnect() {
	s.mu.Lock()
	s.connected = false
	s.server = ""
	s.mu.Unlock()
}
