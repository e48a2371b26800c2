package knowledge

import "errors"

var (
	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrNotInitialized is returned when a search reaches a handle before its
	// first successful build.
	ErrNotInitialized = errors.New("knowledge base not initialized")

	// ErrEmbedding wraps failures of the embedding provider during search.
	ErrEmbedding = errors.New("embedding failed")

	// ErrVectorIndex wraps failures of the vector index during build or search.
	ErrVectorIndex = errors.New("vector index failed")
)
