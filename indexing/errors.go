package indexing

import "errors"

var (
	// ErrInvalidMaxAttempts is returned when maxAttempts is <= 0
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than 0")

	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrEmbeddingMismatch is returned when an embedder returns a different
	// number of vectors than texts.
	ErrEmbeddingMismatch = errors.New("embedding count mismatch")

	// ErrInvalidConfig is returned for non-positive batch, pool or retry settings.
	ErrInvalidConfig = errors.New("invalid indexing config")
)
