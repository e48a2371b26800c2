package knowledge

import (
	"context"
	"fmt"

	"github.com/poiesic/faqit/core"
)

// Search returns the best answers for query.
//
// When the keyword matcher accepts any entry, only the strongest one is
// returned with kind keyword. Its score is the entry's semantic score when
// the entry is also in the semantic top-k, otherwise KeywordFallbackScore.
// Without a keyword hit the semantic top-k with scores strictly above
// minScore is returned, best first.
func (kb *KnowledgeBase) Search(ctx context.Context, query string, topK int, minScore float32) ([]core.ResultView, error) {
	return kb.SearchWithMonitor(ctx, query, topK, minScore, nil)
}

// SearchWithMonitor is Search with callbacks at each stage.
// A nil monitor is allowed.
func (kb *KnowledgeBase) SearchWithMonitor(ctx context.Context, query string, topK int, minScore float32, monitor SearchMonitor) ([]core.ResultView, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	monitor.Start(query)

	if len(kb.entries) == 0 {
		monitor.Finish(nil)
		return nil, nil
	}

	matches := kb.keywords.Match(query)
	monitor.AfterKeywordMatch(matches)

	// The semantic pass runs even on a keyword hit so the hit can report
	// its similarity.
	queryVector, err := kb.embedder.EmbedText(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEmbedding, err)
	}
	hits, err := kb.vectors.Search(queryVector, topK)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrVectorIndex, err)
	}
	monitor.AfterSemanticSearch(hits)

	if len(matches) > 0 {
		best := matches[0].Position
		score := KeywordFallbackScore
		for _, hit := range hits {
			if hit.Position == best {
				score = hit.Score
				break
			}
		}
		result := kb.view(best, score, core.MatchKindKeyword)
		monitor.KeywordHit(result)

		results := []core.ResultView{result}
		monitor.Finish(results)
		return results, nil
	}

	var results []core.ResultView
	for _, hit := range hits {
		if hit.Score <= minScore {
			continue
		}
		result := kb.view(hit.Position, hit.Score, core.MatchKindSemantic)
		monitor.SemanticHit(result)
		results = append(results, result)
	}

	kb.logger.Debug("search complete", "query", query, "keywordMatches", len(matches), "results", len(results))
	monitor.Finish(results)
	return results, nil
}

func (kb *KnowledgeBase) view(position int, score float32, kind core.MatchKind) core.ResultView {
	entry := kb.entries[position]
	return core.ResultView{
		Position:      position,
		Answer:        entry.Answer,
		Score:         score,
		Question:      entry.Question,
		Category:      entry.Category,
		ImagePath:     entry.ImagePath,
		RelatedTopics: append([]string{}, entry.RelatedTopics...),
		Kind:          kind,
	}
}
