// Package configs embeds the shipped configuration tables.
package configs

import "embed"

//go:embed *.json *.yaml
var FS embed.FS
