package knowledge

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/poiesic/faqit/ai"
	"github.com/poiesic/faqit/core"
	"github.com/poiesic/faqit/indexing"
	"github.com/poiesic/faqit/lexical"
	"github.com/poiesic/faqit/vector"
)

// KeywordFallbackScore is reported for a keyword hit whose entry is not among
// the semantic top-k.
const KeywordFallbackScore float32 = 0.6

// RelatedLimit is the maximum number of entries returned by RelatedContent.
const RelatedLimit = 2

// KnowledgeBase is the searchable form of one locale's corpus.
// All indices are derived from the same ordered entry list; positions in
// every index refer to that list.
type KnowledgeBase struct {
	locale     core.Locale
	entries    []*core.Entry
	categories map[string][]int
	keywords   *lexical.Index
	vectors    *vector.FlatIndex
	embedder   ai.Embedder
	logger     *slog.Logger
}

type buildConfig struct {
	locale    core.Locale
	tokenizer lexical.Tokenizer
	indexing  *indexing.Config
	progress  io.Writer
	logger    *slog.Logger
}

// Option configures how a KnowledgeBase is built.
type Option func(*buildConfig) error

// WithLocale sets the locale assigned to entries that carry none.
// Default is core.LocaleEnglish.
func WithLocale(locale core.Locale) Option {
	return func(c *buildConfig) error {
		if err := core.ValidateLocale(locale); err != nil {
			return err
		}
		c.locale = locale
		return nil
	}
}

// WithTokenizer sets the tokenizer of the keyword index.
// Default is lexical.WordTokenizer.
func WithTokenizer(tokenizer lexical.Tokenizer) Option {
	return func(c *buildConfig) error {
		c.tokenizer = tokenizer
		return nil
	}
}

// WithIndexingConfig sets the batch embedding settings.
func WithIndexingConfig(config *indexing.Config) Option {
	return func(c *buildConfig) error {
		c.indexing = config
		return nil
	}
}

// WithProgress reports corpus embedding progress to w.
func WithProgress(w io.Writer) Option {
	return func(c *buildConfig) error {
		c.progress = w
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *buildConfig) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

func newBuildConfig(opts []Option) (*buildConfig, error) {
	c := &buildConfig{
		locale: core.LocaleEnglish,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Build creates a KnowledgeBase from entries. Entries are copied, normalized
// and validated; the first invalid entry fails the build. The category,
// keyword and vector indices are built in one pass over the same order.
func Build(ctx context.Context, entries []*core.Entry, embedder ai.Embedder, opts ...Option) (*KnowledgeBase, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	config, err := newBuildConfig(opts)
	if err != nil {
		return nil, err
	}
	return build(ctx, entries, embedder, config)
}

func build(ctx context.Context, entries []*core.Entry, embedder ai.Embedder, config *buildConfig) (*KnowledgeBase, error) {
	logger := config.logger.With("component", "knowledge", "locale", string(config.locale))

	corpus := make([]*core.Entry, len(entries))
	texts := make([]string, len(entries))
	categories := make(map[string][]int)
	for i, src := range entries {
		entry := src.Clone()
		if entry.Locale == "" {
			entry.Locale = config.locale
		}
		core.NormalizeEntry(entry)
		if err := core.ValidateEntry(entry); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		corpus[i] = entry
		texts[i] = entry.EmbeddingText()
		categories[entry.Category] = append(categories[entry.Category], i)
	}

	var opts []indexing.Option
	if config.progress != nil {
		opts = append(opts, indexing.WithProgress(config.progress))
	}
	opts = append(opts, indexing.WithLogger(logger))
	batcher, err := indexing.NewBatchEmbedder(embedder, config.indexing, opts...)
	if err != nil {
		return nil, err
	}
	defer batcher.Release()

	embeddings, err := batcher.Embed(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEmbedding, err)
	}

	vectors := vector.NewFlatIndex(0)
	for i, v := range embeddings {
		if _, err := vectors.Add(v); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrVectorIndex, i, err)
		}
	}

	kb := &KnowledgeBase{
		locale:     config.locale,
		entries:    corpus,
		categories: categories,
		keywords:   lexical.NewIndex(corpus, config.tokenizer),
		vectors:    vectors,
		embedder:   embedder,
		logger:     logger,
	}

	logger.Info("knowledge base built",
		"entries", len(corpus),
		"keywords", kb.keywords.Len(),
		"categories", len(categories),
		"dim", vectors.Dim())
	return kb, nil
}

// Locale returns the locale the base was built for.
func (kb *KnowledgeBase) Locale() core.Locale {
	return kb.locale
}

// Len returns the number of entries.
func (kb *KnowledgeBase) Len() int {
	return len(kb.entries)
}

// Entries returns copies of all entries in corpus order.
func (kb *KnowledgeBase) Entries() []*core.Entry {
	out := make([]*core.Entry, len(kb.entries))
	for i, e := range kb.entries {
		out[i] = e.Clone()
	}
	return out
}

// Entry returns a copy of the entry at position.
func (kb *KnowledgeBase) Entry(position int) (*core.Entry, bool) {
	if position < 0 || position >= len(kb.entries) {
		return nil, false
	}
	return kb.entries[position].Clone(), true
}

// RelatedContent returns up to RelatedLimit other entries of the category,
// in corpus order, skipping the entry at excludePosition.
func (kb *KnowledgeBase) RelatedContent(category string, excludePosition int) []*core.Entry {
	var related []*core.Entry
	for _, pos := range kb.categories[category] {
		if pos == excludePosition {
			continue
		}
		related = append(related, kb.entries[pos].Clone())
		if len(related) == RelatedLimit {
			break
		}
	}
	return related
}

// Categories returns the number of entries per category.
func (kb *KnowledgeBase) Categories() map[string]int {
	counts := make(map[string]int, len(kb.categories))
	for category, positions := range kb.categories {
		counts[category] = len(positions)
	}
	return counts
}
