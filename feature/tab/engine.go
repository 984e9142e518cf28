package tab

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"speedtab/core/logger"
	"speedtab/core/markup"
	"speedtab/core/proxy"
	"speedtab/feature/tab/tabconfig"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxApplyAttempts bounds how often a push is repeated when a reload swaps
// the snapshot while the push is in progress.
const maxApplyAttempts = 3

var errNoServer = errors.New("player is not connected to a backend server")

// Player is a connection whose tab list the engine can set.
type Player interface {
	ID() uuid.UUID
	Username() string
	CurrentServer() (string, bool)
	SendPlayerListHeaderAndFooter(header, footer markup.Text) error
}

// Roster enumerates the connected players.
type Roster interface {
	Players() []Player
}

// MarkupParser turns tag markup into displayable text.
type MarkupParser interface {
	Parse(s string) (markup.Text, error)
}

// Override is the resolved tab title and footer for one server.
// Configured is false when the server has no entry of its own.
type Override struct {
	Server     string      `json:"server"`
	Configured bool        `json:"configured"`
	RawTitle   string      `json:"raw_title"`
	RawFooter  string      `json:"raw_footer"`
	Title      markup.Text `json:"title"`
	Footer     markup.Text `json:"footer"`
}

// ReloadReport summarizes one reload.
type ReloadReport struct {
	// Servers is the number of servers with their own entry in the new snapshot.
	Servers int
	// Players is the number of players enumerated for the re-push.
	Players int
	// Updated is the number of players that received the new tab list.
	Updated int
	// Skipped is the number of players that left or had no server.
	Skipped int
	// LoadErr is set when the built-in defaults were installed instead.
	LoadErr  error
	Duration time.Duration
}

// Engine resolves tab overrides and pushes them to players.
//
// The active snapshot is held in an atomic pointer: resolutions never lock
// and always read the title and footer from the same snapshot. Reloads are
// serialized among themselves.
type Engine struct {
	source tabconfig.Source
	roster Roster
	parser MarkupParser
	logger *zap.Logger

	snapshot atomic.Pointer[tabconfig.Snapshot]
	reloadMu sync.Mutex
}

// NewEngine creates an engine serving the built-in defaults until the first
// Reload.
func NewEngine(source tabconfig.Source, roster Roster, parser MarkupParser, logger *zap.Logger) *Engine {
	e := &Engine{
		source: source,
		roster: roster,
		parser: parser,
		logger: logger,
	}
	e.snapshot.Store(tabconfig.Defaults())
	return e
}

// Resolve computes the override for server from the active snapshot.
func (e *Engine) Resolve(server string) Override {
	return e.resolve(e.snapshot.Load(), server, e.logger)
}

// Servers returns the servers with their own entry in the active snapshot.
func (e *Engine) Servers() []string {
	return e.snapshot.Load().Servers()
}

// Apply resolves the override for server and pushes it to p.
func (e *Engine) Apply(p Player, server string) error {
	log := logger.WithPlayer(e.logger, p.ID(), p.Username(), server)

	for attempt := 0; attempt < maxApplyAttempts; attempt++ {
		snap := e.snapshot.Load()
		o := e.resolve(snap, server, log)
		if err := p.SendPlayerListHeaderAndFooter(o.Title, o.Footer); err != nil {
			return err
		}
		// Repeat if a reload swapped the snapshot mid-push, so the last
		// write comes from the active snapshot.
		if e.snapshot.Load() == snap {
			return nil
		}
	}
	return nil
}

// Handle processes an event from the proxy.
func (e *Engine) Handle(ev proxy.Event) {
	switch ev := ev.(type) {
	case proxy.ServerSwitchEvent:
		// Push for the server the player is on now. A later switch may have
		// been handled while this event was in flight.
		if err := e.refresh(ev.Player); err != nil {
			log := logger.WithPlayer(e.logger, ev.Player.ID(), ev.Player.Username(), ev.Server)
			if !ev.Player.Connected() {
				log.Debug("Player left before the tab list was pushed", zap.Error(err))
				return
			}
			log.Warn("Failed to push tab list", zap.Error(err))
		}
	case proxy.DisconnectEvent:
		e.logger.Debug("Player left", zap.String("player_id", ev.Player.ID().String()))
	}
}

// Reload loads a new snapshot, installs it, and pushes the resolved tab list
// to every connected player. A failed load installs the built-in defaults.
func (e *Engine) Reload(ctx context.Context) ReloadReport {
	e.reloadMu.Lock()
	defer e.reloadMu.Unlock()

	start := time.Now()

	snap, err := tabconfig.Load(ctx, e.source)
	if err != nil {
		e.logger.Error("Failed to load config file, using built-in defaults", zap.Error(err))
	}
	e.snapshot.Store(snap)

	report := ReloadReport{
		Servers: len(snap.Servers()),
		LoadErr: err,
	}

	for _, p := range e.roster.Players() {
		report.Players++
		if err := e.refresh(p); err != nil {
			report.Skipped++
			e.logger.Debug("Skipped player during reload",
				zap.String("player_id", p.ID().String()),
				zap.Error(err))
			continue
		}
		report.Updated++
	}

	report.Duration = time.Since(start)
	e.logger.Info("Tab configuration loaded",
		zap.Stringer("source", e.source),
		zap.Int("servers", report.Servers),
		zap.Int("players", report.Players),
		zap.Int("updated", report.Updated),
		zap.Int("skipped", report.Skipped),
		zap.Duration("duration", report.Duration))

	return report
}

// refresh re-pushes p for whatever server it is on, repeating if the player
// switched server during the push.
func (e *Engine) refresh(p Player) error {
	for attempt := 0; attempt < maxApplyAttempts; attempt++ {
		server, ok := p.CurrentServer()
		if !ok {
			return errNoServer
		}
		if err := e.Apply(p, server); err != nil {
			return err
		}
		if now, _ := p.CurrentServer(); now == server {
			return nil
		}
	}
	return nil
}

func (e *Engine) resolve(snap *tabconfig.Snapshot, server string, log *zap.Logger) Override {
	rawTitle := snap.Title(server)
	rawFooter := snap.Footer(server)

	return Override{
		Server:     server,
		Configured: snap.HasServer(server),
		RawTitle:   rawTitle,
		RawFooter:  rawFooter,
		Title:      e.format(rawTitle, "title", log),
		Footer:     e.format(rawFooter, "footer", log),
	}
}

// format translates color codes and parses the markup. Text that does not
// parse is sent as the raw configured string.
func (e *Engine) format(raw, field string, log *zap.Logger) markup.Text {
	text, err := e.parser.Parse(markup.TranslateLegacy(raw))
	if err != nil {
		log.Warn("Failed to parse tab markup, sending plain text",
			zap.String("field", field),
			zap.String("raw", raw),
			zap.Error(err))
		return markup.Plain(raw)
	}
	return text
}

// RegistryRoster exposes the players of a proxy registry as a Roster.
func RegistryRoster(reg *proxy.Registry) Roster {
	return registryRoster{reg: reg}
}

type registryRoster struct {
	reg *proxy.Registry
}

func (r registryRoster) Players() []Player {
	sessions := r.reg.Players()
	players := make([]Player, len(sessions))
	for i, s := range sessions {
		players[i] = s
	}
	return players
}
