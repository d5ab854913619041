package engine

import (
	"database/sql"

	_ "modernc.org/sqlite" // register pure-Go SQLite driver
)

// Open opens a SQLite database using the modernc.org/sqlite driver.
//
// Pass a file path like "./db.sqlite". ":memory:" also works, but every
// pooled connection then gets its own empty database.
func Open(dsn string) (*sql.DB, error) { return sql.Open("sqlite", dsn) }
