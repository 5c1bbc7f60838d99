// Package migrations embeds the goose migrations of the records store, one
// directory per SQL dialect.
package migrations

import "embed"

//go:embed postgres/*.sql sqlite/*.sql
var Migrations embed.FS
