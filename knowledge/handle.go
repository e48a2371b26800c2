package knowledge

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/poiesic/faqit/ai"
	"github.com/poiesic/faqit/core"
)

// Handle owns the current KnowledgeBase of a locale.
// Searches read the current base without locking. Reload builds a complete
// replacement and swaps it in; a failed build keeps the previous base.
type Handle struct {
	embedder ai.Embedder
	config   *buildConfig
	current  atomic.Pointer[KnowledgeBase]
	reloadMu sync.Mutex
}

// NewHandle creates an empty handle. Options apply to every build.
func NewHandle(embedder ai.Embedder, opts ...Option) (*Handle, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	config, err := newBuildConfig(opts)
	if err != nil {
		return nil, err
	}
	return &Handle{embedder: embedder, config: config}, nil
}

// Locale returns the locale of the handle.
func (h *Handle) Locale() core.Locale {
	return h.config.locale
}

// Load returns the current base, or ErrNotInitialized before the first
// successful Reload.
func (h *Handle) Load() (*KnowledgeBase, error) {
	kb := h.current.Load()
	if kb == nil {
		return nil, ErrNotInitialized
	}
	return kb, nil
}

// Ready reports whether a base is available.
func (h *Handle) Ready() bool {
	return h.current.Load() != nil
}

// Reload builds a new base from entries and makes it current.
// Concurrent reloads are serialized.
func (h *Handle) Reload(ctx context.Context, entries []*core.Entry) error {
	h.reloadMu.Lock()
	defer h.reloadMu.Unlock()

	kb, err := build(ctx, entries, h.embedder, h.config)
	if err != nil {
		h.config.logger.Error("knowledge base reload failed, keeping previous base",
			"locale", string(h.config.locale), "err", err)
		return err
	}
	h.current.Store(kb)
	return nil
}

// Search runs a search against the current base.
func (h *Handle) Search(ctx context.Context, query string, topK int, minScore float32) ([]core.ResultView, error) {
	kb, err := h.Load()
	if err != nil {
		return nil, err
	}
	return kb.Search(ctx, query, topK, minScore)
}
