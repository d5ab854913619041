// Package cover provides a vector index backed by a cover tree with base 2.
// Insertion is incremental and a nearest-neighbor query visits a pruned
// frontier per level instead of every vector.
package cover
