// Package reembed regenerates embeddings for stored context records.
//
// Embeddings are tied to the scheme that produced them; after switching
// embedders (for example from the local hash embedder to a model-backed one),
// stored vectors no longer live in the same space as query vectors and
// similarity collapses to zero. Reembedding walks every user's context in
// batches, with retry and progress reporting, and rewrites each record's
// vector under the current embedder.
package reembed
