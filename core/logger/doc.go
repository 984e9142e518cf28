// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments (development vs production)
// and integrates with the Fiber web framework used by the HTTP bridge.
//
// # Context Awareness
//
// WithRayID extracts the RayID from a Fiber context and attaches it to the log
// entry, so that all logs related to one bridge request can be correlated.
// WithPlayer attaches a player's UUID, name and backend server, which is how
// the tab engine tags everything it logs about a connection.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Proxy bridge started")
//
//	l := logger.WithPlayer(log, player.ID(), player.Username(), "lobby")
//	l.Warn("Failed to push tab list", zap.Error(err))
package logger
