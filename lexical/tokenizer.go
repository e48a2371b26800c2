package lexical

import (
	"regexp"
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// Tokenizer splits normalized text into word tokens.
// Implementations must be safe for concurrent use.
type Tokenizer interface {
	Tokens(text string) []string
}

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// WordTokenizer splits on word boundaries. Suitable for scripts that
// separate words with spaces.
type WordTokenizer struct{}

var _ Tokenizer = WordTokenizer{}

// Tokens returns the runs of letters, digits and underscores in text.
func (WordTokenizer) Tokens(text string) []string {
	return wordPattern.FindAllString(text, -1)
}

// KagomeTokenizer segments Japanese text morphologically with the IPA
// dictionary. Non-word segments (punctuation, whitespace) are dropped.
type KagomeTokenizer struct {
	t *tokenizer.Tokenizer
}

var _ Tokenizer = (*KagomeTokenizer)(nil)

// NewKagomeTokenizer loads the IPA dictionary and returns a tokenizer.
// Loading the dictionary is expensive; share the instance.
func NewKagomeTokenizer() (*KagomeTokenizer, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &KagomeTokenizer{t: t}, nil
}

// Tokens returns the surface forms of the segmented text.
func (k *KagomeTokenizer) Tokens(text string) []string {
	segments := k.t.Wakati(text)
	tokens := make([]string, 0, len(segments))
	for _, s := range segments {
		s = strings.TrimSpace(s)
		if s == "" || !wordPattern.MatchString(s) {
			continue
		}
		tokens = append(tokens, s)
	}
	return tokens
}
