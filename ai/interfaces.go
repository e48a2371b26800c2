package ai

import "context"

// Embedder turns text into dense vectors. Vectors from the same Embedder are
// comparable with each other and nothing else. Safe for concurrent use.
type Embedder interface {
	// EmbedText embeds a single query or entry text.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts embeds texts in one call, result i belonging to texts[i].
	// A failure on any text fails the whole call.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// AIProvider owns an Embedder and its lifecycle.
// A knowledge base must be queried with the same provider it was built with,
// otherwise similarity scores are meaningless.
type AIProvider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
