// Package bridge is the HTTP side of the proxy integration.
//
// The proxy reports player connections, backend switches and disconnects to
// these endpoints, and forwards command invocations. Each call updates the
// proxy.Registry, which in turn publishes events to the tab engine.
//
// # HTTP Endpoints
//
//   - POST /events/connect : {"player_id"?, "username"} registers a player.
//   - POST /events/switch : {"player_id", "server"} records a backend switch.
//   - POST /events/disconnect : {"player_id"} removes a player.
//   - GET /players : Lists connected players.
//   - GET /players/:id/tab : Header and footer last pushed to a player.
//   - POST /commands/:name : Runs a command as the X-Requester header's requester.
package bridge
