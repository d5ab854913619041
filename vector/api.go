package vector

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a lookup has nothing to answer with.
var ErrNotFound = errors.New("vector: not found")

// Document represents a logical document stored in the vector store.
type Document struct {
	// ID is the logical identifier of the document.
	ID string

	// Content holds the main text/body of the document.
	Content string

	// Metadata is an opaque JSON or structured payload associated with the
	// document, kept as a raw string.
	Metadata string

	// Embedding is the vector representation of the document content.
	// Documents without an embedding are stored but never returned by Nearest.
	Embedding []float32
}

// Store defines the application-level vector store API: durable documents
// plus a nearest-neighbor index over their embeddings.
type Store interface {
	// AddDocuments inserts documents into the store and returns their IDs.
	AddDocuments(ctx context.Context, docs []Document) ([]string, error)

	// Nearest returns the document whose embedding is closest to the query
	// and its distance. It returns ErrNotFound when no document has an embedding.
	Nearest(ctx context.Context, queryEmbedding []float32) (Document, float64, error)

	// Remove deletes the document with the given ID.
	Remove(ctx context.Context, id string) error
}
