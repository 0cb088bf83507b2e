// Package migrations embeds the SQL migrations for the postgres-backed
// key-value store.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
