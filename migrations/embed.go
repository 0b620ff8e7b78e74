// Package migrations embeds the SQL migration files so they can be used
// by the goose programmatic API in tests and at startup.
// Each supported backend has its own directory because the DDL differs
// (identity columns vs AUTOINCREMENT).
package migrations

import (
	"embed"
	"io/fs"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// Postgres holds the Postgres migrations rooted at the directory itself,
// ready to pass to goose.NewProvider.
var Postgres = mustSub("postgres")

// SQLite holds the SQLite migrations rooted at the directory itself.
var SQLite = mustSub("sqlite")

func mustSub(dir string) fs.FS {
	sub, err := fs.Sub(files, dir)
	if err != nil {
		panic("migrations: " + err.Error())
	}
	return sub
}
