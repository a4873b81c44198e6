// Package assets embeds the files the game ships with.
package assets

import _ "embed"

// DefaultConfigName is the filename used in diagnostics for the embedded config.
const DefaultConfigName = "assets/default.hcl"

//go:embed default.hcl
var defaultConfig []byte

// DefaultConfig returns the built-in configuration, the base layer every user
// config file is applied over.
func DefaultConfig() []byte {
	return append([]byte(nil), defaultConfig...)
}
