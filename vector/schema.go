package vector

import (
	"context"
	"database/sql"
)

const docsSchema = `
CREATE TABLE IF NOT EXISTS docs (
    id TEXT PRIMARY KEY,
    content TEXT,
    meta TEXT,
    embedding BLOB
);
`

// vector_storage holds one serialized index per indexed table.
const storageSchema = `
CREATE TABLE IF NOT EXISTS vector_storage (
    table_name TEXT PRIMARY KEY,
    distance   TEXT NOT NULL,
    "index"    BLOB
);
`

// EnsureSchema creates the documents and index storage tables in the
// provided database if they do not already exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range []string{docsSchema, storageSchema} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
