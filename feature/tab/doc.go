// Package tab pushes per-server tab list titles and footers to players.
//
// The Engine holds the active tabconfig.Snapshot in an atomic pointer. When a
// player reaches a backend server, the engine looks up the server's title and
// footer (each falling back to the default on its own), translates ampersand
// color codes, parses the markup, and pushes the result to the player.
// Markup that fails to parse is sent as the raw configured string, for that
// field and that player only.
//
// # Reload
//
// Reload loads a new snapshot, swaps it in with one atomic store, and
// re-pushes every connected player from its current server. A failed load
// installs tabconfig.Defaults(). Players that leave during the loop, or are
// not on a server yet, are skipped.
//
// Reloads are triggered by:
//   - the speedtabreload command (permission speedtab.reload)
//   - the Watcher, when the configuration file changes
//   - SIGHUP, handled in cmd/start
//
// # HTTP Endpoints
//
//   - GET /tab/servers : Servers with their own entry.
//   - GET /tab/resolve/:server : Preview of the resolved title and footer.
package tab
