// Package migrations embeds the goose SQL migrations, one directory per
// database dialect.
package migrations

import (
	"embed"
	"io/fs"
)

//go:embed postgres/*.sql mysql/*.sql
var files embed.FS

// ForDialect returns the migration filesystem for the given dialect
// directory ("postgres" or "mysql").
func ForDialect(dialect string) (fs.FS, error) {
	return fs.Sub(files, dialect)
}
