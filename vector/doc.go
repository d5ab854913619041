// Package vector defines a lightweight vector-store API and SQLite-backed
// utilities used by this project. It includes:
//   - Document model and Store interface
//   - SQLiteStore: durable documents with a cover-tree nearest-neighbor index
//   - Schema helpers for the docs and vector_storage tables
//   - Embedding encoding (BLOB) and distance functions
package vector
