package respond

import (
	"slices"
	"strings"
)

const (
	minRepetitionTokens = 10
	minUniqueRatio      = 0.3
	minRepeatedRunes    = 20
	minRepeats          = 3
	maxPunctuationRun   = 3
)

// Validate reports whether text looks like a sound answer. It rejects
// degenerate repetition: a low share of distinct tokens, a block of at least
// 20 runes repeated three times in a row, or a punctuation mark repeated four
// or more times.
func Validate(text string) bool {
	words := strings.Fields(text)
	if len(words) > minRepetitionTokens {
		unique := make(map[string]struct{}, len(words))
		for _, w := range words {
			unique[w] = struct{}{}
		}
		if float64(len(unique))/float64(len(words)) < minUniqueRatio {
			return false
		}
	}

	runes := []rune(text)
	return !hasRepeatedBlock(runes) && !hasPunctuationRun(runes)
}

// hasRepeatedBlock reports whether some block of at least minRepeatedRunes
// runes, none of them a newline, occurs minRepeats times back to back.
func hasRepeatedBlock(runes []rune) bool {
	n := len(runes)
	for start := 0; start+minRepeatedRunes*minRepeats <= n; start++ {
		for size := minRepeatedRunes; start+size*minRepeats <= n; size++ {
			block := runes[start : start+size]
			if slices.Contains(block, '\n') {
				break
			}
			repeated := true
			for k := 1; k < minRepeats; k++ {
				next := runes[start+k*size : start+(k+1)*size]
				if !slices.Equal(block, next) {
					repeated = false
					break
				}
			}
			if repeated {
				return true
			}
		}
	}
	return false
}

func hasPunctuationRun(runes []rune) bool {
	run := 0
	for i, r := range runes {
		if !strings.ContainsRune(".,;!?", r) {
			run = 0
			continue
		}
		if i > 0 && runes[i-1] == r {
			run++
		} else {
			run = 1
		}
		if run > maxPunctuationRun {
			return true
		}
	}
	return false
}
