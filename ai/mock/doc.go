// Package mock provides test double implementations of AI service interfaces.
//
// # Usage in Tests
//
//	// Deterministic hash vectors
//	provider := mock.NewMockProvider()
//
//	// Controlled similarity: vectors count topic occurrences
//	embedder := mock.NewTopicEmbedder("mandate", "client", "report")
//
//	// Failure injection
//	embedder := mock.NewMockEmbedder()
//	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
//	    return nil, errors.New("model unavailable")
//	}
//
//	count := embedder.CallCount()
package mock
