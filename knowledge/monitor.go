package knowledge

import (
	"log/slog"

	"github.com/poiesic/faqit/core"
	"github.com/poiesic/faqit/lexical"
	"github.com/poiesic/faqit/vector"
)

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to inspect intermediate steps while curating keywords.
type SearchMonitor interface {
	Start(query string)
	AfterKeywordMatch(matches []lexical.Match)
	AfterSemanticSearch(hits []vector.Hit)
	KeywordHit(result core.ResultView)
	SemanticHit(result core.ResultView)
	Finish(results []core.ResultView)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                       {}
func (n *noopMonitor) AfterKeywordMatch(_ []lexical.Match)  {}
func (n *noopMonitor) AfterSemanticSearch(_ []vector.Hit)   {}
func (n *noopMonitor) KeywordHit(_ core.ResultView)         {}
func (n *noopMonitor) SemanticHit(_ core.ResultView)        {}
func (n *noopMonitor) Finish(_ []core.ResultView)           {}

// LogMonitor writes every search step to a logger at debug level.
type LogMonitor struct {
	Logger *slog.Logger
}

var _ SearchMonitor = (*LogMonitor)(nil)

func (m *LogMonitor) logger() *slog.Logger {
	if m.Logger == nil {
		return slog.Default()
	}
	return m.Logger
}

func (m *LogMonitor) Start(query string) {
	m.logger().Debug("search started", "query", query)
}

func (m *LogMonitor) AfterKeywordMatch(matches []lexical.Match) {
	for _, match := range matches {
		m.logger().Debug("keyword candidate", "position", match.Position, "weight", match.Weight)
	}
}

func (m *LogMonitor) AfterSemanticSearch(hits []vector.Hit) {
	for _, hit := range hits {
		m.logger().Debug("semantic candidate", "position", hit.Position, "score", hit.Score)
	}
}

func (m *LogMonitor) KeywordHit(result core.ResultView) {
	m.logger().Debug("keyword hit", "position", result.Position, "score", result.Score)
}

func (m *LogMonitor) SemanticHit(result core.ResultView) {
	m.logger().Debug("semantic hit", "position", result.Position, "score", result.Score)
}

func (m *LogMonitor) Finish(results []core.ResultView) {
	m.logger().Debug("search finished", "results", len(results))
}
