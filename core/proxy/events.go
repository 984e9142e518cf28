package proxy

// Event is a notification delivered by the registry to its subscribers.
type Event interface {
	eventName() string
}

// ServerSwitchEvent fires after a player has connected to a backend server.
// Previous is empty on the player's first connection.
type ServerSwitchEvent struct {
	Player   *Session
	Previous string
	Server   string
}

func (ServerSwitchEvent) eventName() string { return "server_switch" }

// DisconnectEvent fires after a player has left the proxy.
type DisconnectEvent struct {
	Player *Session
}

func (DisconnectEvent) eventName() string { return "disconnect" }

// Handler receives registry events.
type Handler func(Event)

// EventName returns a short name for logging.
func EventName(ev Event) string {
	if ev == nil {
		return ""
	}
	return ev.eventName()
}
