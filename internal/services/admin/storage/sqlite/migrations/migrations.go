// Package migrations embeds the admin SQLite schema.
package migrations

import "embed"

// FS holds the migration files applied in lexical order.
//
//go:embed *.sql
var FS embed.FS
