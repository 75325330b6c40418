// Package migrations embeds the goose SQL migrations for every supported store.
package migrations

import (
	"embed"
	"io/fs"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// Postgres returns the PostgreSQL migration directory.
func Postgres() fs.FS {
	return sub("postgres")
}

// SQLite returns the SQLite migration directory.
func SQLite() fs.FS {
	return sub("sqlite")
}

func sub(dir string) fs.FS {
	f, err := fs.Sub(files, dir)
	if err != nil {
		// Directory names are compile-time constants.
		panic(err)
	}
	return f
}
