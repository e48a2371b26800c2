package lexical

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize folds text into the form used for keyword matching:
// NFKC (full-width and half-width variants collapse), lowercase, trimmed.
func Normalize(text string) string {
	return strings.TrimSpace(strings.ToLower(norm.NFKC.String(text)))
}

// Stop words ignored when building hashed features
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "be": true, "is": true, "are": true,
	"was": true, "to": true, "of": true, "and": true, "in": true, "that": true,
	"have": true, "it": true, "for": true, "not": true, "on": true, "with": true,
	"as": true, "you": true, "at": true, "this": true, "but": true,
	"by": true, "from": true, "i": true, "my": true, "me": true, "can": true,
}

// IsStopword reports whether a lowercase word carries no retrieval signal.
func IsStopword(word string) bool {
	return stopWords[word]
}

// IsCJK reports whether r belongs to a script written without spaces
// between words (Han, Hiragana, Katakana).
func IsCJK(r rune) bool {
	return unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana)
}

// ContainsCJK reports whether any rune of text is CJK.
func ContainsCJK(text string) bool {
	return strings.IndexFunc(text, IsCJK) >= 0
}
