// Package indexing embeds knowledge base corpora.
//
// A corpus is split into batches that are embedded concurrently on an ants
// worker pool. Each batch is retried with exponential backoff, results keep
// input order and every vector is normalized to unit length so inner
// product equals cosine similarity.
package indexing
