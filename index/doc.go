// Package index defines a minimal abstraction for vector indexes that can be
// built from embeddings, queried for the single nearest neighbor, and
// serialized for persistence. Implementations in this module are a
// brute-force baseline and a cover tree.
package index
