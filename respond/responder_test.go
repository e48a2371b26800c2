package respond

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/poiesic/faqit/ai/mock"
	"github.com/poiesic/faqit/core"
	"github.com/poiesic/faqit/knowledge"
	"github.com/poiesic/faqit/locale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type searchFunc func(ctx context.Context, query string, topK int, minScore float32) ([]core.ResultView, error)

func (f searchFunc) Search(ctx context.Context, query string, topK int, minScore float32) ([]core.ResultView, error) {
	return f(ctx, query, topK, minScore)
}

func fixedResults(results ...core.ResultView) searchFunc {
	return func(_ context.Context, _ string, _ int, _ float32) ([]core.ResultView, error) {
		return results, nil
	}
}

func newTestResponder(t *testing.T, source Searcher, opts ...Option) *Responder {
	t.Helper()
	r, err := NewResponder(source, opts...)
	require.NoError(t, err)
	return r
}

func TestNewResponder(t *testing.T) {
	t.Run("requires searcher", func(t *testing.T) {
		_, err := NewResponder(nil)
		assert.ErrorIs(t, err, ErrSearcherRequired)
	})

	invalid := map[string]Option{
		"topK":      WithTopK(0),
		"threshold": WithThreshold(2),
		"messages":  WithMessages(Messages{OutOfContext: "x"}),
	}
	for name, opt := range invalid {
		t.Run("rejects invalid "+name, func(t *testing.T) {
			_, err := NewResponder(fixedResults(), opt)
			assert.ErrorIs(t, err, ErrInvalidOption)
		})
	}
}

func TestResponder_Respond(t *testing.T) {
	ctx := context.Background()
	en := locale.English()

	t.Run("blank query never searches", func(t *testing.T) {
		called := false
		r := newTestResponder(t, searchFunc(func(context.Context, string, int, float32) ([]core.ResultView, error) {
			called = true
			return nil, nil
		}))

		for _, q := range []string{"", "   ", "\n\t"} {
			resp, err := r.Respond(ctx, q)
			require.NoError(t, err)
			assert.Equal(t, en.OutOfContext, resp.Text)
			assert.Equal(t, core.ConfidenceOutOfContext, resp.Confidence)
			assert.Empty(t, resp.ImagePath)
			assert.Empty(t, resp.RelatedTopics)
		}
		assert.False(t, called)
		assert.Zero(t, r.Log().Len())
	})

	t.Run("passes top-k and threshold", func(t *testing.T) {
		var gotK int
		var gotMin float32
		r := newTestResponder(t, searchFunc(func(_ context.Context, _ string, k int, minScore float32) ([]core.ResultView, error) {
			gotK, gotMin = k, minScore
			return nil, nil
		}), WithTopK(3), WithThreshold(0.4))

		_, err := r.Respond(ctx, "anything")
		require.NoError(t, err)
		assert.Equal(t, 3, gotK)
		assert.Equal(t, float32(0.4), gotMin)

		def := newTestResponder(t, searchFunc(func(_ context.Context, _ string, k int, minScore float32) ([]core.ResultView, error) {
			gotK, gotMin = k, minScore
			return nil, nil
		}))
		_, err = def.Respond(ctx, "anything")
		require.NoError(t, err)
		assert.Equal(t, DefaultTopK, gotK)
		assert.Equal(t, DefaultThreshold, gotMin)
	})

	t.Run("no results is out of context", func(t *testing.T) {
		r := newTestResponder(t, fixedResults())
		resp, err := r.Respond(ctx, "asdkjasdkj nonsense query")
		require.NoError(t, err)
		assert.Equal(t, en.OutOfContext, resp.Text)
		assert.Equal(t, core.ConfidenceOutOfContext, resp.Confidence)
		assert.Empty(t, resp.ImagePath)
		assert.NotNil(t, resp.RelatedTopics)
		assert.Empty(t, resp.RelatedTopics)
	})

	t.Run("returns the cleaned top answer", func(t *testing.T) {
		r := newTestResponder(t, fixedResults(
			core.ResultView{
				Position:      3,
				Answer:        "Go to the mandate page. Go to the mandate page. Press delete to remove it",
				Score:         0.82,
				ImagePath:     "images/delete_mandate.png",
				RelatedTopics: []string{"Mandates", "Admin"},
				Kind:          core.MatchKindKeyword,
			},
			core.ResultView{Position: 4, Answer: "Second best answer text.", Score: 0.5, Kind: core.MatchKindSemantic},
		))

		resp, err := r.Respond(ctx, "  How do I delete a mandate?  ")
		require.NoError(t, err)
		assert.Equal(t, "Go to the mandate page. Press delete to remove it.", resp.Text)
		assert.Equal(t, "images/delete_mandate.png", resp.ImagePath)
		assert.Equal(t, []string{"Mandates", "Admin"}, resp.RelatedTopics)
		assert.Equal(t, core.ConfidenceHigh, resp.Confidence)
		assert.Equal(t, core.MatchKindKeyword, resp.Kind)
		assert.Equal(t, float32(0.82), resp.Score)
		assert.Equal(t, 10, resp.WordCount)

		logged := r.Log().Snapshot()
		require.Len(t, logged, 1)
		assert.Equal(t, "How do I delete a mandate?", logged[0].Query)
		assert.Equal(t, resp.Text, logged[0].Response)
		assert.Equal(t, resp.ImagePath, logged[0].ImagePath)
		assert.Equal(t, core.LocaleEnglish, logged[0].Locale)
		assert.Equal(t, core.MatchKindKeyword, logged[0].Kind)
	})

	t.Run("falls back to stored text when cleaning fails validation", func(t *testing.T) {
		block := "the quarterly report is ready "
		stored := strings.Repeat(block, 4)
		r := newTestResponder(t, fixedResults(core.ResultView{Answer: stored, Score: 0.7, Kind: core.MatchKindSemantic}))

		resp, err := r.Respond(ctx, "report")
		require.NoError(t, err)
		assert.Equal(t, stored, resp.Text)
	})

	t.Run("falls back to stored text when nothing survives cleaning", func(t *testing.T) {
		r := newTestResponder(t, fixedResults(core.ResultView{Answer: "Yes.", Score: 0.7, Kind: core.MatchKindSemantic}))

		resp, err := r.Respond(ctx, "is it?")
		require.NoError(t, err)
		assert.Equal(t, "Yes.", resp.Text)
	})

	t.Run("uninitialized source", func(t *testing.T) {
		r := newTestResponder(t, searchFunc(func(context.Context, string, int, float32) ([]core.ResultView, error) {
			return nil, knowledge.ErrNotInitialized
		}))

		resp, err := r.Respond(ctx, "team")
		assert.ErrorIs(t, err, knowledge.ErrNotInitialized)
		assert.Equal(t, en.Apology, resp.Text)
		assert.Equal(t, core.ConfidenceError, resp.Confidence)
	})

	t.Run("search failure degrades to apology", func(t *testing.T) {
		r := newTestResponder(t, searchFunc(func(context.Context, string, int, float32) ([]core.ResultView, error) {
			return nil, fmt.Errorf("%w: connection refused", knowledge.ErrEmbedding)
		}))

		resp, err := r.Respond(ctx, "team")
		require.NoError(t, err)
		assert.Equal(t, en.Apology, resp.Text)
		assert.Equal(t, core.ConfidenceError, resp.Confidence)
		assert.Empty(t, resp.RelatedTopics)
		assert.Zero(t, r.Log().Len())
	})

	t.Run("japanese profile", func(t *testing.T) {
		ja := locale.Japanese()
		r := newTestResponder(t, fixedResults(core.ResultView{
			Answer: "ビジュアルアルファは2019年に設立されました。ビジュアルアルファは2019年に設立されました。",
			Score:  0.9,
			Kind:   core.MatchKindSemantic,
		}), WithLocale(ja))

		resp, err := r.Respond(ctx, "設立はいつ?")
		require.NoError(t, err)
		assert.Equal(t, "ビジュアルアルファは2019年に設立されました。", resp.Text)
		assert.Equal(t, core.LocaleJapanese, r.Locale())

		empty := newTestResponder(t, fixedResults(), WithLocale(ja))
		resp, err = empty.Respond(ctx, "天気は?")
		require.NoError(t, err)
		assert.Equal(t, ja.OutOfContext, resp.Text)
	})

	t.Run("shared log", func(t *testing.T) {
		log := NewConversationLog()
		a := newTestResponder(t, fixedResults(core.ResultView{Answer: "An answer that is long enough.", Score: 0.9}), WithLog(log))
		b := newTestResponder(t, fixedResults(core.ResultView{Answer: "Another answer long enough.", Score: 0.9}), WithLog(log))

		_, _ = a.Respond(ctx, "one")
		_, _ = b.Respond(ctx, "two")
		assert.Equal(t, 2, log.Len())
	})

	t.Run("canceled context degrades to apology", func(t *testing.T) {
		r := newTestResponder(t, searchFunc(func(ctx context.Context, _ string, _ int, _ float32) ([]core.ResultView, error) {
			return nil, ctx.Err()
		}))
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		resp, err := r.Respond(cctx, "team")
		require.NoError(t, err)
		assert.Equal(t, core.ConfidenceError, resp.Confidence)
	})
}

func TestConfidenceOf(t *testing.T) {
	tests := []struct {
		kind  core.MatchKind
		score float32
		want  core.Confidence
	}{
		{core.MatchKindKeyword, 0.1, core.ConfidenceHigh},
		{core.MatchKindKeyword, knowledge.KeywordFallbackScore, core.ConfidenceHigh},
		{core.MatchKindSemantic, 0.6, core.ConfidenceHigh},
		{core.MatchKindSemantic, 0.59, core.ConfidenceMedium},
		{core.MatchKindSemantic, 0.45, core.ConfidenceMedium},
		{core.MatchKindSemantic, 0.44, core.ConfidenceLow},
		{core.MatchKindSemantic, 0.31, core.ConfidenceLow},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%.2f", tt.kind, tt.score), func(t *testing.T) {
			assert.Equal(t, tt.want, confidenceOf(core.ResultView{Kind: tt.kind, Score: tt.score}))
		})
	}
}

func TestResponder_WithKnowledgeBase(t *testing.T) {
	ctx := context.Background()
	entries := []*core.Entry{
		{
			Question:  "What does Visual Alpha do?",
			Answer:    "Visual Alpha builds analytics software for asset managers.",
			Category:  "company_overview",
			ImagePath: "images/company_overview.png",
			Keywords:  []string{"company", "visual alpha"},
		},
		{
			Question:      "How do I delete a mandate?",
			Answer:        "Open the mandate list. Select the mandate and press delete.",
			Category:      "mandate_management",
			ImagePath:     "images/delete_mandate.png",
			RelatedTopics: []string{"Mandates"},
			Keywords:      []string{"delete mandate", "delete", "mandate"},
		},
		{
			Question: "Who leads the team?",
			Answer:   "The team is led by our chief executive.",
			Category: "leadership",
		},
	}
	kb, err := knowledge.Build(ctx, entries, mock.NewTopicEmbedder("alpha", "mandate", "team"))
	require.NoError(t, err)

	r := newTestResponder(t, kb)

	resp, err := r.Respond(ctx, "How do I delete a mandate?")
	require.NoError(t, err)
	assert.Equal(t, "Open the mandate list. Select the mandate and press delete.", resp.Text)
	assert.Equal(t, "images/delete_mandate.png", resp.ImagePath)
	assert.Equal(t, core.MatchKindKeyword, resp.Kind)
	assert.Equal(t, core.ConfidenceHigh, resp.Confidence)

	resp, err = r.Respond(ctx, "who is on the team")
	require.NoError(t, err)
	assert.Equal(t, core.MatchKindSemantic, resp.Kind)
	assert.Equal(t, "The team is led by our chief executive.", resp.Text)

	resp, err = r.Respond(ctx, "asdkjasdkj nonsense query")
	require.NoError(t, err)
	assert.Equal(t, core.ConfidenceOutOfContext, resp.Confidence)

	var handle *knowledge.Handle
	handle, err = knowledge.NewHandle(mock.NewTopicEmbedder("alpha"))
	require.NoError(t, err)
	_, err = newTestResponder(t, handle).Respond(ctx, "team")
	assert.True(t, errors.Is(err, knowledge.ErrNotInitialized))
}
