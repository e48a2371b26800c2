package respond

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// DefaultMaxLength is the maximum cleaned response length in runes.
	DefaultMaxLength = 500

	// minSentenceRunes is the length a sentence must exceed to be kept.
	minSentenceRunes = 10

	maxCleanPasses = 8
)

// Cleaner tidies stored answers before they are shown: duplicate and
// fragmentary sentences are removed and long answers are cut at a
// sentence boundary.
type Cleaner struct {
	Terminator rune
	MaxLength  int
}

// NewCleaner returns a Cleaner for sentences ending in terminator.
func NewCleaner(terminator rune) Cleaner {
	return Cleaner{Terminator: terminator, MaxLength: DefaultMaxLength}
}

// Clean returns text with duplicate sentences and sentences of at most ten
// runes removed, terminated, and truncated to MaxLength runes at the last
// sentence boundary. It returns "" when no sentence survives.
// Clean(Clean(s)) == Clean(s).
func (c Cleaner) Clean(text string) string {
	out := c.pass(text)
	for range maxCleanPasses {
		next := c.pass(out)
		if next == out {
			break
		}
		out = next
	}
	return out
}

func (c Cleaner) pass(text string) string {
	term := string(c.Terminator)

	seen := make(map[string]bool)
	var kept []string
	for _, s := range strings.Split(text, term) {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] || utf8.RuneCountInString(s) <= minSentenceRunes {
			continue
		}
		seen[s] = true
		kept = append(kept, s)
	}
	if len(kept) == 0 {
		return ""
	}

	cleaned := strings.Join(kept, c.separator()) + term
	if c.MaxLength > 0 && utf8.RuneCountInString(cleaned) > c.MaxLength {
		cleaned = c.truncate(cleaned)
	}
	return cleaned
}

// separator joins sentences. Latin terminators are followed by a space.
func (c Cleaner) separator() string {
	if c.Terminator < utf8.RuneSelf {
		return string(c.Terminator) + " "
	}
	return string(c.Terminator)
}

// truncate cuts text to at most MaxLength runes ending at the last
// terminator in range, or hard-cuts when there is none.
func (c Cleaner) truncate(text string) string {
	runes := []rune(text)
	head := string(runes[:c.MaxLength])
	if i := strings.LastIndex(head, string(c.Terminator)); i >= 0 {
		return head[:i+utf8.RuneLen(c.Terminator)]
	}
	head = string(runes[:c.MaxLength-1])
	return strings.TrimRightFunc(head, unicode.IsSpace) + string(c.Terminator)
}
