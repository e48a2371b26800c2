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


package indexing

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/faqit/ai"
	"github.com/poiesic/faqit/vector"
)

// BatchEmbedder embeds corpora in concurrent batches.
type BatchEmbedder struct {
	embedder ai.Embedder
	config   *Config
	pool     *ants.Pool
	progress io.Writer
	logger   *slog.Logger
}

// Option configures a BatchEmbedder.
type Option func(*BatchEmbedder) error

// WithProgress enables progress reporting to w.
func WithProgress(w io.Writer) Option {
	return func(b *BatchEmbedder) error {
		b.progress = w
		return nil
	}
}

// WithLogger sets the logger. nil keeps the default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(b *BatchEmbedder) error {
		if logger != nil {
			b.logger = logger
		}
		return nil
	}
}

// NewBatchEmbedder creates a BatchEmbedder. A nil config uses DefaultConfig.
// Call Release when done.
func NewBatchEmbedder(embedder ai.Embedder, config *Config, opts ...Option) (*BatchEmbedder, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	b := &BatchEmbedder{
		embedder: embedder,
		config:   config,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}

	pool, err := ants.NewPool(config.PoolSize)
	if err != nil {
		return nil, err
	}
	b.pool = pool
	return b, nil
}

// Release releases the worker pool.
func (b *BatchEmbedder) Release() {
	if b.pool != nil {
		b.pool.Release()
	}
}

// Embed returns one unit-length vector per text, in input order.
// The first failing batch cancels the rest.
func (b *BatchEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var tracker *ProgressTracker
	if b.progress != nil {
		tracker = NewProgressTracker(b.progress, len(texts), b.config.ReportInterval)
		tracker.Start()
	}

	results := make([][]float32, len(texts))
	var (
		wg       sync.WaitGroup
		errMu    sync.Mutex
		firstErr error
	)
	fail := func(err error) {
		errMu.Lock()
		defer errMu.Unlock()
		if firstErr == nil {
			firstErr = err
			cancel()
		}
	}

	for start := 0; start < len(texts); start += b.config.BatchSize {
		end := min(start+b.config.BatchSize, len(texts))

		wg.Add(1)
		err := b.pool.Submit(func() {
			defer wg.Done()
			if err := b.embedBatch(ctx, texts[start:end], results[start:end]); err != nil {
				fail(fmt.Errorf("batch %d-%d: %w", start, end, err))
				return
			}
			if tracker != nil {
				tracker.Increment(end - start)
			}
		})
		if err != nil {
			wg.Done()
			fail(err)
			break
		}
	}
	wg.Wait()

	if firstErr != nil {
		b.logger.Warn("corpus embedding failed", "texts", len(texts), "err", firstErr)
		return nil, firstErr
	}
	if tracker != nil {
		tracker.Finish()
	}

	b.logger.Debug("corpus embedded", "texts", len(texts), "batchSize", b.config.BatchSize)
	return results, nil
}

// embedBatch fills out with the normalized vectors for batch.
func (b *BatchEmbedder) embedBatch(ctx context.Context, batch []string, out [][]float32) error {
	var embeddings [][]float32
	err := RetryWithBackoff(ctx, func() error {
		var err error
		embeddings, err = b.embedder.EmbedTexts(ctx, batch)
		if err != nil {
			return err
		}
		if len(embeddings) != len(batch) {
			return fmt.Errorf("%w: expected %d, got %d", ErrEmbeddingMismatch, len(batch), len(embeddings))
		}
		return nil
	}, b.config.MaxRetries, b.config.RetryDelay)
	if err != nil {
		return err
	}

	for i, v := range embeddings {
		out[i] = vector.Normalize(v)
	}
	return nil
}
