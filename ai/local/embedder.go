package local

import (
	"context"
	"hash/fnv"
	"log/slog"
	"math"

	"github.com/poiesic/faqit/ai"
	"github.com/poiesic/faqit/lexical"
	"github.com/poiesic/faqit/vector"
)

// Embedder is an offline ai.Embedder based on feature hashing.
//
// Features are the normalized word tokens of the text (stop words removed)
// and, for CJK runs, overlapping character bigrams. Each feature is hashed
// into one signed dimension; counts are dampened with 1+log(tf) and the
// result is L2-normalized. Texts that share vocabulary score high, which is
// enough for small curated corpora without a model server.
type Embedder struct {
	dim    int
	logger *slog.Logger
}

var _ ai.Embedder = (*Embedder)(nil)

func newEmbedder(dim int) *Embedder {
	return &Embedder{
		dim:    dim,
		logger: slog.Default().With("component", "local-embedder"),
	}
}

// NewEmbedder creates a hashing embedder with the configured dimension.
func NewEmbedder(config *ai.Config) (ai.Embedder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return newEmbedder(config.Dimensions), nil
}

// EmbedText generates a vector embedding for a single text string.
func (e *Embedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return e.embed(text), nil
}

// EmbedTexts generates vector embeddings for multiple text strings in a batch.
func (e *Embedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	e.logger.Debug("generating embeddings for texts", "count", len(texts))

	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		vectors[i] = e.embed(text)
	}
	return vectors, nil
}

func (e *Embedder) embed(text string) []float32 {
	counts := make(map[string]int)
	for _, f := range Features(text) {
		counts[f]++
	}

	v := make([]float32, e.dim)
	for feature, tf := range counts {
		h := fnv.New64a()
		h.Write([]byte(feature))
		sum := h.Sum64()
		idx := int(sum % uint64(e.dim))
		weight := float32(1 + math.Log(float64(tf)))
		if sum&(1<<63) != 0 {
			weight = -weight
		}
		v[idx] += weight
	}
	return vector.Normalize(v)
}

// Features extracts the hashed features of text.
func Features(text string) []string {
	var features []string
	for _, token := range (lexical.WordTokenizer{}).Tokens(lexical.Normalize(text)) {
		if !lexical.ContainsCJK(token) {
			if !lexical.IsStopword(token) {
				features = append(features, token)
			}
			continue
		}
		runes := []rune(token)
		if len(runes) == 1 {
			features = append(features, token)
			continue
		}
		for i := 0; i+1 < len(runes); i++ {
			features = append(features, string(runes[i:i+2]))
		}
	}
	return features
}
