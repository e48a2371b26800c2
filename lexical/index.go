package lexical

import (
	"slices"
	"strings"

	"github.com/poiesic/faqit/core"
)

const (
	// TokenWeight is added for every query token that is a keyword.
	TokenWeight = 0.5

	// AcceptWeight is the minimum accumulated weight of a match.
	AcceptWeight = 1.0
)

// Match is an entry position accepted by the keyword matcher.
type Match struct {
	Position int
	Weight   float64
}

// Index maps curated keywords to the positions of the entries that declare
// them. It is built once from an ordered corpus and never mutated.
type Index struct {
	keywords  []string // first-insertion order
	postings  map[string][]int
	tokenizer Tokenizer
}

// NewIndex builds a keyword index over entries. Positions refer to the
// order of entries. A nil tokenizer defaults to WordTokenizer.
func NewIndex(entries []*core.Entry, tokenizer Tokenizer) *Index {
	if tokenizer == nil {
		tokenizer = WordTokenizer{}
	}
	ix := &Index{
		postings:  make(map[string][]int),
		tokenizer: tokenizer,
	}
	for pos, entry := range entries {
		for _, kw := range entry.Keywords {
			kw = Normalize(kw)
			if kw == "" {
				continue
			}
			positions, ok := ix.postings[kw]
			if !ok {
				ix.keywords = append(ix.keywords, kw)
			}
			if len(positions) > 0 && positions[len(positions)-1] == pos {
				continue
			}
			ix.postings[kw] = append(positions, pos)
		}
	}
	return ix
}

// Len returns the number of distinct keywords.
func (ix *Index) Len() int {
	return len(ix.keywords)
}

// Positions returns the entry positions registered for a keyword.
func (ix *Index) Positions(keyword string) []int {
	return slices.Clone(ix.postings[Normalize(keyword)])
}

// Match scores every entry against the query.
//
// Phrase pass: each keyword contained in the normalized query adds its word
// count to the entries that own it. Token pass: each query token that is
// itself a keyword adds TokenWeight. Positions with a total of at least
// AcceptWeight are returned by descending weight, then ascending position.
func (ix *Index) Match(query string) []Match {
	q := Normalize(query)
	if q == "" || len(ix.keywords) == 0 {
		return nil
	}

	weights := make(map[int]float64)

	for _, kw := range ix.keywords {
		if !strings.Contains(q, kw) {
			continue
		}
		w := float64(len(strings.Fields(kw)))
		for _, pos := range ix.postings[kw] {
			weights[pos] += w
		}
	}

	for _, token := range ix.tokenizer.Tokens(q) {
		for _, pos := range ix.postings[token] {
			weights[pos] += TokenWeight
		}
	}

	matches := make([]Match, 0, len(weights))
	for pos, w := range weights {
		if w >= AcceptWeight {
			matches = append(matches, Match{Position: pos, Weight: w})
		}
	}

	slices.SortFunc(matches, func(a, b Match) int {
		switch {
		case a.Weight > b.Weight:
			return -1
		case a.Weight < b.Weight:
			return 1
		}
		return a.Position - b.Position
	})

	return matches
}
