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


package respond

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/faqit/core"
	"github.com/poiesic/faqit/knowledge"
	"github.com/poiesic/faqit/locale"
)

const (
	// DefaultThreshold is the minimum semantic score of an accepted result.
	DefaultThreshold float32 = 0.30

	// DefaultTopK is the number of candidates requested per query.
	DefaultTopK = 2

	// HighConfidenceScore and MediumConfidenceScore bound the semantic
	// confidence labels.
	HighConfidenceScore   float32 = 0.6
	MediumConfidenceScore float32 = 0.45
)

// Searcher is the retrieval source of a Responder. Both
// *knowledge.KnowledgeBase and *knowledge.Handle satisfy it.
type Searcher interface {
	Search(ctx context.Context, query string, topK int, minScore float32) ([]core.ResultView, error)
}

// Messages are the canned responses of a locale.
type Messages struct {
	OutOfContext string
	Apology      string
}

// Response is the answer shown to the user.
type Response struct {
	Text          string
	ImagePath     string
	RelatedTopics []string
	Confidence    core.Confidence
	Score         float32
	Kind          core.MatchKind
	WordCount     int
}

// Responder turns a query into a single displayable answer.
type Responder struct {
	source    Searcher
	locale    core.Locale
	messages  Messages
	cleaner   Cleaner
	threshold float32
	topK      int
	log       *ConversationLog
	logger    *slog.Logger
}

// Option configures a Responder.
type Option func(*Responder) error

// WithLocale applies a locale profile: canned messages and the cleaner's
// sentence terminator. Default is locale.English().
func WithLocale(p locale.Profile) Option {
	return func(r *Responder) error {
		r.locale = p.Locale
		r.messages = Messages{OutOfContext: p.OutOfContext, Apology: p.Apology}
		r.cleaner.Terminator = p.Terminator
		return nil
	}
}

// WithMessages overrides the canned responses.
func WithMessages(m Messages) Option {
	return func(r *Responder) error {
		if m.OutOfContext == "" || m.Apology == "" {
			return fmt.Errorf("%w: messages must not be empty", ErrInvalidOption)
		}
		r.messages = m
		return nil
	}
}

// WithCleaner replaces the answer cleaner.
func WithCleaner(c Cleaner) Option {
	return func(r *Responder) error {
		r.cleaner = c
		return nil
	}
}

// WithThreshold sets the minimum semantic score. Default is DefaultThreshold.
func WithThreshold(threshold float32) Option {
	return func(r *Responder) error {
		if threshold < -1 || threshold > 1 {
			return fmt.Errorf("%w: threshold %v", ErrInvalidOption, threshold)
		}
		r.threshold = threshold
		return nil
	}
}

// WithTopK sets the number of candidates requested. Default is DefaultTopK.
func WithTopK(k int) Option {
	return func(r *Responder) error {
		if k < 1 {
			return fmt.Errorf("%w: topK %d", ErrInvalidOption, k)
		}
		r.topK = k
		return nil
	}
}

// WithLog sets the conversation log, so several responders can share one.
func WithLog(log *ConversationLog) Option {
	return func(r *Responder) error {
		if log != nil {
			r.log = log
		}
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Responder) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewResponder creates a Responder over source.
func NewResponder(source Searcher, opts ...Option) (*Responder, error) {
	if source == nil {
		return nil, ErrSearcherRequired
	}

	en := locale.English()
	r := &Responder{
		source:    source,
		locale:    en.Locale,
		messages:  Messages{OutOfContext: en.OutOfContext, Apology: en.Apology},
		cleaner:   NewCleaner(en.Terminator),
		threshold: DefaultThreshold,
		topK:      DefaultTopK,
		log:       NewConversationLog(),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	r.logger = r.logger.With("component", "responder", "locale", string(r.locale))
	return r, nil
}

// Log returns the conversation log.
func (r *Responder) Log() *ConversationLog {
	return r.log
}

// Locale returns the responder's locale.
func (r *Responder) Locale() core.Locale {
	return r.locale
}

// Respond answers query. Unanswerable queries get the out-of-context
// message and retrieval failures get the apology; neither is an error.
// The only error is knowledge.ErrNotInitialized, returned together with
// the apology response.
func (r *Responder) Respond(ctx context.Context, query string) (Response, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return r.outOfContext(), nil
	}

	results, err := r.source.Search(ctx, query, r.topK, r.threshold)
	if err != nil {
		if errors.Is(err, knowledge.ErrNotInitialized) {
			return r.apology(), fmt.Errorf("respond: %w", err)
		}
		r.logger.Error("search failed", "query", query, "err", err)
		return r.apology(), nil
	}
	if len(results) == 0 {
		r.logger.Debug("no answer above threshold", "query", query, "threshold", r.threshold)
		return r.outOfContext(), nil
	}

	best := results[0]
	text := r.cleaner.Clean(best.Answer)
	if text == "" || !Validate(text) {
		r.logger.Debug("cleaned answer rejected, using stored text", "position", best.Position)
		text = best.Answer
	}

	r.log.Append(core.Interaction{
		Locale:    r.locale,
		Query:     query,
		Response:  text,
		ImagePath: best.ImagePath,
		Topics:    best.RelatedTopics,
		Score:     best.Score,
		Kind:      best.Kind,
	})

	topics := best.RelatedTopics
	if topics == nil {
		topics = []string{}
	}
	return Response{
		Text:          text,
		ImagePath:     best.ImagePath,
		RelatedTopics: topics,
		Confidence:    confidenceOf(best),
		Score:         best.Score,
		Kind:          best.Kind,
		WordCount:     len(strings.Fields(text)),
	}, nil
}

func confidenceOf(result core.ResultView) core.Confidence {
	switch {
	case result.Kind == core.MatchKindKeyword:
		return core.ConfidenceHigh
	case result.Score >= HighConfidenceScore:
		return core.ConfidenceHigh
	case result.Score >= MediumConfidenceScore:
		return core.ConfidenceMedium
	default:
		return core.ConfidenceLow
	}
}

func (r *Responder) outOfContext() Response {
	return Response{
		Text:          r.messages.OutOfContext,
		RelatedTopics: []string{},
		Confidence:    core.ConfidenceOutOfContext,
		WordCount:     len(strings.Fields(r.messages.OutOfContext)),
	}
}

func (r *Responder) apology() Response {
	return Response{
		Text:          r.messages.Apology,
		RelatedTopics: []string{},
		Confidence:    core.ConfidenceError,
	}
}
