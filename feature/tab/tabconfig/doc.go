// Package tabconfig holds the tab title and footer configuration.
//
// The configuration is a YAML document with a default section and one section
// per backend server:
//
//	default:
//	  tabTitle: "&6Welcome"
//	  tabFooter: "&7Have fun!"
//	servers:
//	  lobby:
//	    tabTitle: "&aLobby"
//
// Parsing produces a Snapshot. A Snapshot is immutable; a reload builds a new
// one and the tab engine swaps it in as a whole.
//
// # Fallback
//
// A server entry missing tabTitle or tabFooter receives the default value of
// the same document when it is parsed. A missing default section uses
// BuiltinTitle and BuiltinFooter. When the document cannot be read or
// parsed, Load returns Defaults() together with an error wrapping
// ErrLoadFailure.
//
// # Sources
//
//   - FileSource: a file in the data directory, created from Template if missing.
//   - ObjectSource: an object in a storage bucket, uploaded from Template if missing.
package tabconfig
