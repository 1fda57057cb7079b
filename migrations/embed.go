// Package migrations embeds the history archive schema into the binary.
//
// Pass FS to database.DB.Migrate at startup.
package migrations

import "embed"

// FS holds every *.sql migration in this directory at its root.
//
//go:embed *.sql
var FS embed.FS
