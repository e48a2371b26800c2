package local

import (
	"log/slog"

	"github.com/poiesic/faqit/ai"
)

// Provider implements ai.AIProvider with the offline hashing embedder.
type Provider struct {
	embedder *Embedder
	logger   *slog.Logger
}

var _ ai.AIProvider = (*Provider)(nil)

// NewProvider creates a provider whose embedder needs no network access.
// Only config.Dimensions is used.
func NewProvider(config *ai.Config) (ai.AIProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Provider{
		embedder: newEmbedder(config.Dimensions),
		logger:   slog.Default().With("component", "local-provider"),
	}, nil
}

// Embedder returns the hashing embedder.
func (p *Provider) Embedder() ai.Embedder {
	return p.embedder
}

// Close is a no-op.
func (p *Provider) Close() error {
	p.logger.Debug("closing local provider")
	return nil
}
