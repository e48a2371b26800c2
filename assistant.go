// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package faqit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/poiesic/faqit/ai"
	"github.com/poiesic/faqit/ai/local"
	"github.com/poiesic/faqit/ai/openai"
	"github.com/poiesic/faqit/core"
	"github.com/poiesic/faqit/dataset"
	"github.com/poiesic/faqit/indexing"
	"github.com/poiesic/faqit/knowledge"
	"github.com/poiesic/faqit/locale"
	"github.com/poiesic/faqit/respond"
	"github.com/poiesic/faqit/storage"
	"github.com/poiesic/faqit/storage/badger"
	"golang.org/x/sync/errgroup"
)

// Embedder kinds selectable with WithEmbedderKind.
const (
	EmbedderOpenAI = "openai"
	EmbedderLocal  = "local"
)

// ErrUnknownEmbedder indicates an embedder kind other than EmbedderOpenAI
// or EmbedderLocal.
var ErrUnknownEmbedder = errors.New("unknown embedder kind")

// Assistant wires the entry store to one knowledge base and responder per
// locale. Every locale answers from the entries stored for it.
type Assistant struct {
	backend     *badger.Backend
	repo        storage.EntryRepository
	deployments map[core.Locale]*deployment
	log         *respond.ConversationLog
	options     *assistantOptions
	logger      *slog.Logger
}

type deployment struct {
	profile   locale.Profile
	provider  ai.AIProvider
	handle    *knowledge.Handle
	responder *respond.Responder
}

// Option configures an Assistant.
type Option func(*assistantOptions) error

type assistantOptions struct {
	inMemory     bool
	seed         bool
	embedderKind string
	aiOptions    []ai.ConfigOption
	models       map[core.Locale]string
	providers    map[core.Locale]ai.AIProvider
	indexing     *indexing.Config
	progress     io.Writer
	threshold    float32
	topK         int
	logger       *slog.Logger
}

// WithInMemory keeps the entry store in memory. The path is ignored.
func WithInMemory() Option {
	return func(o *assistantOptions) error {
		o.inMemory = true
		return nil
	}
}

// WithSeed stores the built-in corpus of every locale that has no entries.
func WithSeed() Option {
	return func(o *assistantOptions) error {
		o.seed = true
		return nil
	}
}

// WithEmbedderKind selects the embedding backend. Default is EmbedderOpenAI.
func WithEmbedderKind(kind string) Option {
	return func(o *assistantOptions) error {
		switch kind {
		case EmbedderOpenAI, EmbedderLocal:
			o.embedderKind = kind
			return nil
		}
		return fmt.Errorf("%w: %q", ErrUnknownEmbedder, kind)
	}
}

// WithAIOptions applies configuration shared by every locale's provider.
func WithAIOptions(opts ...ai.ConfigOption) Option {
	return func(o *assistantOptions) error {
		o.aiOptions = append(o.aiOptions, opts...)
		return nil
	}
}

// WithEmbeddingModel overrides the embedding model of one locale.
func WithEmbeddingModel(l core.Locale, model string) Option {
	return func(o *assistantOptions) error {
		if err := core.ValidateLocale(l); err != nil {
			return err
		}
		o.models[l] = model
		return nil
	}
}

// WithProvider uses provider for one locale instead of building one.
// The assistant closes it.
func WithProvider(l core.Locale, provider ai.AIProvider) Option {
	return func(o *assistantOptions) error {
		if err := core.ValidateLocale(l); err != nil {
			return err
		}
		o.providers[l] = provider
		return nil
	}
}

// WithIndexingConfig sets the batch embedding configuration.
func WithIndexingConfig(config *indexing.Config) Option {
	return func(o *assistantOptions) error {
		o.indexing = config
		return nil
	}
}

// WithProgress reports embedding progress to w during builds.
func WithProgress(w io.Writer) Option {
	return func(o *assistantOptions) error {
		o.progress = w
		return nil
	}
}

// WithThreshold sets the semantic confidence threshold of every responder.
func WithThreshold(threshold float32) Option {
	return func(o *assistantOptions) error {
		o.threshold = threshold
		return nil
	}
}

// WithTopK sets the number of semantic candidates of every responder.
func WithTopK(k int) Option {
	return func(o *assistantOptions) error {
		o.topK = k
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *assistantOptions) error {
		if logger != nil {
			o.logger = logger
		}
		return nil
	}
}

// NewAssistant opens the entry store at filePath and builds the knowledge
// base of every locale from the stored entries.
func NewAssistant(ctx context.Context, filePath string, opts ...Option) (*Assistant, error) {
	options := &assistantOptions{
		embedderKind: EmbedderOpenAI,
		models:       make(map[core.Locale]string),
		providers:    make(map[core.Locale]ai.AIProvider),
		threshold:    respond.DefaultThreshold,
		topK:         respond.DefaultTopK,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory, badger.WithLogger(options.logger))
	if err != nil {
		return nil, err
	}

	repo, err := badger.NewEntryRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	a := &Assistant{
		backend:     backend,
		repo:        repo,
		deployments: make(map[core.Locale]*deployment),
		log:         respond.NewConversationLog(),
		options:     options,
		logger:      options.logger.With("component", "assistant"),
	}

	for _, l := range core.Locales {
		d, err := a.deploy(l)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("locale %s: %w", l, err)
		}
		a.deployments[l] = d
	}

	if options.seed {
		if err := a.seed(ctx); err != nil {
			a.Close()
			return nil, err
		}
	}

	if err := a.Reload(ctx); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *Assistant) deploy(l core.Locale) (*deployment, error) {
	profile, err := locale.For(l)
	if err != nil {
		return nil, err
	}

	provider := a.options.providers[l]
	if provider == nil {
		provider, err = a.newProvider(profile)
		if err != nil {
			return nil, err
		}
	}

	tokenizer, err := profile.NewTokenizer()
	if err != nil {
		provider.Close()
		return nil, err
	}

	kbOpts := []knowledge.Option{
		knowledge.WithLocale(l),
		knowledge.WithTokenizer(tokenizer),
		knowledge.WithIndexingConfig(a.options.indexing),
		knowledge.WithLogger(a.options.logger),
	}
	if a.options.progress != nil {
		kbOpts = append(kbOpts, knowledge.WithProgress(a.options.progress))
	}
	handle, err := knowledge.NewHandle(provider.Embedder(), kbOpts...)
	if err != nil {
		provider.Close()
		return nil, err
	}

	responder, err := respond.NewResponder(handle,
		respond.WithLocale(profile),
		respond.WithThreshold(a.options.threshold),
		respond.WithTopK(a.options.topK),
		respond.WithLog(a.log),
		respond.WithLogger(a.options.logger),
	)
	if err != nil {
		provider.Close()
		return nil, err
	}

	return &deployment{
		profile:   profile,
		provider:  provider,
		handle:    handle,
		responder: responder,
	}, nil
}

func (a *Assistant) newProvider(profile locale.Profile) (ai.AIProvider, error) {
	opts := append([]ai.ConfigOption{ai.WithEmbeddingModel(profile.EmbeddingModel)}, a.options.aiOptions...)
	if m := a.options.models[profile.Locale]; m != "" {
		opts = append(opts, ai.WithEmbeddingModel(m))
	}
	config := ai.NewConfig(opts...)

	switch a.options.embedderKind {
	case EmbedderLocal:
		return local.NewProvider(config)
	default:
		return openai.NewProvider(config)
	}
}

func (a *Assistant) seed(ctx context.Context) error {
	for _, l := range core.Locales {
		count, err := a.repo.CountEntries(ctx, l)
		if err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		entries, err := dataset.Seed(l)
		if err != nil {
			return err
		}
		if _, err := a.repo.AddEntries(ctx, entries...); err != nil {
			return fmt.Errorf("seed %s: %w", l, err)
		}
		a.logger.Info("seeded locale", "locale", string(l), "entries", len(entries))
	}
	return nil
}

func (a *Assistant) deployment(l core.Locale) (*deployment, error) {
	d, ok := a.deployments[l]
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownLocale, l)
	}
	return d, nil
}

// Close releases the providers and the entry store.
func (a *Assistant) Close() error {
	for l, d := range a.deployments {
		if err := d.provider.Close(); err != nil {
			a.logger.Error("error closing AI provider", "locale", string(l), "err", err)
		}
	}

	if err := a.repo.Close(); err != nil {
		a.logger.Error("error closing entry repository", "err", err)
		return err
	}

	if err := a.backend.Close(); err != nil {
		a.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// Locales lists the deployed locales.
func (a *Assistant) Locales() []core.Locale {
	return append([]core.Locale{}, core.Locales...)
}

// Repository returns the entry store.
func (a *Assistant) Repository() storage.EntryRepository {
	return a.repo
}

// Log returns the conversation log shared by every locale.
func (a *Assistant) Log() *respond.ConversationLog {
	return a.log
}

// Responder returns the responder of a locale.
func (a *Assistant) Responder(l core.Locale) (*respond.Responder, error) {
	d, err := a.deployment(l)
	if err != nil {
		return nil, err
	}
	return d.responder, nil
}

// Respond answers query in locale l.
func (a *Assistant) Respond(ctx context.Context, l core.Locale, query string) (respond.Response, error) {
	r, err := a.Responder(l)
	if err != nil {
		return respond.Response{}, err
	}
	return r.Respond(ctx, query)
}

// KnowledgeBase returns the current knowledge base of a locale.
func (a *Assistant) KnowledgeBase(l core.Locale) (*knowledge.KnowledgeBase, error) {
	d, err := a.deployment(l)
	if err != nil {
		return nil, err
	}
	return d.handle.Load()
}

// Search runs the hybrid search of a locale with the responder settings.
// A nil monitor is allowed.
func (a *Assistant) Search(ctx context.Context, l core.Locale, query string, monitor knowledge.SearchMonitor) ([]core.ResultView, error) {
	kb, err := a.KnowledgeBase(l)
	if err != nil {
		return nil, err
	}
	return kb.SearchWithMonitor(ctx, query, a.options.topK, a.options.threshold, monitor)
}

// Entries returns the stored entries of a locale in corpus order.
func (a *Assistant) Entries(ctx context.Context, l core.Locale) ([]*core.Entry, error) {
	if _, err := a.deployment(l); err != nil {
		return nil, err
	}
	return a.repo.ListEntries(ctx, l)
}

// AddEntry stores entry at the end of its locale's corpus and rebuilds
// that locale. A blank locale means English.
func (a *Assistant) AddEntry(ctx context.Context, entry *core.Entry) (*core.Entry, error) {
	if entry.Locale == "" {
		entry.Locale = core.LocaleEnglish
	}
	added, err := a.repo.AddEntries(ctx, entry)
	if err != nil {
		return nil, err
	}
	if err := a.Reload(ctx, entry.Locale); err != nil {
		return nil, err
	}
	return added[0], nil
}

// Import stores entries in locale l and rebuilds it. With replace set the
// existing entries of l are removed first.
func (a *Assistant) Import(ctx context.Context, l core.Locale, entries []*core.Entry, replace bool) error {
	if _, err := a.deployment(l); err != nil {
		return err
	}
	for _, e := range entries {
		if e.Locale == "" {
			e.Locale = l
		}
	}

	var err error
	if replace {
		_, err = a.repo.ReplaceEntries(ctx, l, entries...)
	} else {
		_, err = a.repo.AddEntries(ctx, entries...)
	}
	if err != nil {
		return err
	}
	return a.Reload(ctx, l)
}

// Reload rebuilds the knowledge bases of the given locales, or of every
// locale when none is given, from the stored entries. Locales are rebuilt
// concurrently; a locale whose build fails keeps its previous base.
func (a *Assistant) Reload(ctx context.Context, locales ...core.Locale) error {
	if len(locales) == 0 {
		locales = core.Locales
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, l := range locales {
		d, err := a.deployment(l)
		if err != nil {
			return err
		}
		g.Go(func() error {
			entries, err := a.repo.ListEntries(gctx, l)
			if err != nil {
				return fmt.Errorf("list %s entries: %w", l, err)
			}
			if err := d.handle.Reload(gctx, entries); err != nil {
				return fmt.Errorf("reload %s: %w", l, err)
			}
			return nil
		})
	}
	return g.Wait()
}
