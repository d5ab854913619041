package vecutil

import (
	"context"
	"fmt"

	"github.com/viant/covertree/vector"
)

// EmbedFunc converts free-form text into an embedding.
//
// Implementations can call any embedding provider (OpenAI, local model,
// other cloud APIs, etc.) as long as they return a slice of float32 values.
// The store itself stays embedding-agnostic.
type EmbedFunc func(ctx context.Context, text string) ([]float32, error)

// TextDocument is a document whose embedding is computed from its content.
type TextDocument struct {
	ID      string
	Content string
	Meta    string
}

// Match is the document closest to a text query.
type Match struct {
	ID       string
	Distance float64
	Content  string
	Meta     string
}

// AddTexts embeds every document's content and adds the documents to store.
func AddTexts(ctx context.Context, store vector.Store, embed EmbedFunc, docs []TextDocument) ([]string, error) {
	if store == nil {
		return nil, fmt.Errorf("vecutil: store is nil")
	}
	if embed == nil {
		return nil, fmt.Errorf("vecutil: EmbedFunc is nil")
	}
	out := make([]vector.Document, 0, len(docs))
	for _, d := range docs {
		vec, err := embed(ctx, d.Content)
		if err != nil {
			return nil, fmt.Errorf("vecutil: embed %q: %w", d.ID, err)
		}
		out = append(out, vector.Document{ID: d.ID, Content: d.Content, Metadata: d.Meta, Embedding: vec})
	}
	return store.AddDocuments(ctx, out)
}

// NearestText embeds query and returns the closest document in store.
func NearestText(ctx context.Context, store vector.Store, embed EmbedFunc, query string) (Match, error) {
	if store == nil {
		return Match{}, fmt.Errorf("vecutil: store is nil")
	}
	if embed == nil {
		return Match{}, fmt.Errorf("vecutil: EmbedFunc is nil")
	}
	vec, err := embed(ctx, query)
	if err != nil {
		return Match{}, err
	}
	doc, distance, err := store.Nearest(ctx, vec)
	if err != nil {
		return Match{}, err
	}
	return Match{ID: doc.ID, Distance: distance, Content: doc.Content, Meta: doc.Metadata}, nil
}
