// Package assets bundles the default word catalogue into the binary.
package assets

import _ "embed"

// Words is the default dataset used when no words path is configured.
//
//go:embed words.json
var Words []byte
