package proxy

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrAlreadyConnected is returned when connecting a player ID that is online.
var ErrAlreadyConnected = errors.New("player already connected")

// Registry tracks connected players and delivers events about them.
type Registry struct {
	logger *zap.Logger

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session

	subMu       sync.RWMutex
	subscribers []Handler

	cmdMu    sync.RWMutex
	commands map[string]Command
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *zap.Logger) *Registry {
	return &Registry{
		logger:   logger,
		sessions: make(map[uuid.UUID]*Session),
		commands: make(map[string]Command),
	}
}

// Subscribe registers h to receive every event published after this call.
// Handlers run on the goroutine that caused the event.
func (r *Registry) Subscribe(h Handler) {
	r.subMu.Lock()
	r.subscribers = append(r.subscribers, h)
	r.subMu.Unlock()
}

// Connect registers a new session. A nil id is replaced with a random one.
func (r *Registry) Connect(id uuid.UUID, username string) (*Session, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errors.New("username is required")
	}
	if id == uuid.Nil {
		id = uuid.New()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[id]; exists {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyConnected, id)
	}
	s := newSession(id, username)
	r.sessions[id] = s

	r.logger.Debug("Player connected", zap.String("player_id", id.String()), zap.String("player", username))
	return s, nil
}

// SwitchServer moves a player to server and publishes a ServerSwitchEvent.
func (r *Registry) SwitchServer(id uuid.UUID, server string) error {
	server = strings.TrimSpace(server)
	if server == "" {
		return errors.New("server name is required")
	}

	s, ok := r.Player(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPlayer, id)
	}

	previous, err := s.setServer(server)
	if err != nil {
		return err
	}

	r.publish(ServerSwitchEvent{Player: s, Previous: previous, Server: server})
	return nil
}

// Disconnect removes a player and publishes a DisconnectEvent.
func (r *Registry) Disconnect(id uuid.UUID) error {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPlayer, id)
	}

	s.disconnect()
	r.publish(DisconnectEvent{Player: s})
	return nil
}

// Player looks up a connected player.
func (r *Registry) Player(id uuid.UUID) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Players returns the currently connected players ordered by username.
// The slice is a copy; sessions in it may disconnect at any time.
func (r *Registry) Players() []*Session {
	r.mu.RLock()
	players := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		players = append(players, s)
	}
	r.mu.RUnlock()

	sort.Slice(players, func(i, j int) bool {
		if players[i].username == players[j].username {
			return players[i].id.String() < players[j].id.String()
		}
		return players[i].username < players[j].username
	})
	return players
}

// Count returns the number of connected players.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func (r *Registry) publish(ev Event) {
	r.subMu.RLock()
	subs := make([]Handler, len(r.subscribers))
	copy(subs, r.subscribers)
	r.subMu.RUnlock()

	r.logger.Debug("Publishing event", zap.String("event", EventName(ev)), zap.Int("subscribers", len(subs)))
	for _, h := range subs {
		h(ev)
	}
}
