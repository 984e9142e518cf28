// Package proxy is the host runtime seen by the tab feature.
//
// It models the parts of a multi-backend proxy the feature depends on:
// connected player sessions, backend switch notifications, a command manager
// and a permission check. Events reach it through the HTTP bridge
// (feature/bridge) rather than a game protocol.
//
// # Components
//
//   - Registry: connected sessions keyed by player UUID. Publishes
//     ServerSwitchEvent and DisconnectEvent to subscribers, and dispatches
//     registered commands.
//   - Session: one player. Holds the current backend server and the player
//     list header/footer last pushed to it.
//   - StaticPermissions: the console and configured operators hold every permission.
//   - CommandSource: BufferedSource collects replies, ConsoleSource logs them.
//
// # Usage
//
//	reg := proxy.NewRegistry(logger)
//	reg.Subscribe(func(ev proxy.Event) { ... })
//	s, _ := reg.Connect(uuid.Nil, "Steve")
//	_ = reg.SwitchServer(s.ID(), "lobby")
package proxy
