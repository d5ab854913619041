// Package bruteforce provides linear-scan nearest-neighbor search: a generic
// Scan over any metric space, used as a correctness oracle for the cover
// tree, and a vector Index with a compact binary format shared with the
// cover index.
package bruteforce
