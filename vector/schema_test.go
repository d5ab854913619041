package vector

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/viant/covertree/engine"
)

// TestEnsureSchema verifies that EnsureSchema creates the docs and
// vector_storage tables and can run twice.
func TestEnsureSchema(t *testing.T) {
	db, err := engine.Open(filepath.Join(t.TempDir(), "schema.sqlite"))
	if err != nil {
		t.Fatalf("engine.Open failed: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if err := EnsureSchema(ctx, db); err != nil {
			t.Fatalf("EnsureSchema #%d failed: %v", i+1, err)
		}
	}
	if _, err := db.Exec(`INSERT INTO docs(id, content, meta, embedding) VALUES('1', 'hello', '{}', X'')`); err != nil {
		t.Fatalf("insert into docs failed: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO vector_storage(table_name, distance, "index") VALUES('docs', 'euclidean', X'00')`); err != nil {
		t.Fatalf("insert into vector_storage failed: %v", err)
	}
}
