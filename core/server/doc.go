// Package server holds the HTTP bridge server configuration.
//
// While cmd/start handles the server startup, this package defines the
// listen address and the API key the proxy must present.
//
// # Usage
//
// This package is used by the core/config package to embed server settings.
package server
