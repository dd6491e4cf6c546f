// Package configs provides the embedded default configuration file.
// Run `go generate ./pkg/configs` to update it from the root directory.
package configs

//go:generate cp ../../alchemy.yml alchemy.yml

import _ "embed"

// DefaultConfigBytes is the default config printed by `alchemy config`.
//
//go:embed alchemy.yml
var DefaultConfigBytes []byte
