// Package prefixstat computes a positional byte-frequency histogram over the
// first WindowSize bytes of every regular file under a set of roots.
//
// It walks each root with fastwalk using a single worker, samples regular
// files into one reusable buffer, and accumulates every sampled byte into a
// WindowSize x 256 counter matrix. Symlinks and other special entries are
// skipped without being followed. The matrix serializes to one comma-separated
// row per offset.
package prefixstat
