package lexical

import (
	"testing"

	"github.com/poiesic/faqit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "lowercases and trims", in: "  How Do I?  ", want: "how do i?"},
		{name: "folds full-width latin", in: "ＶＩＳＵＡＬ", want: "visual"},
		{name: "folds half-width katakana", in: "ｱﾙﾌｧ", want: "アルファ"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestWordTokenizer(t *testing.T) {
	tokens := WordTokenizer{}.Tokens("how do i delete a mandate? it's 2019")
	assert.Equal(t, []string{"how", "do", "i", "delete", "a", "mandate", "it", "s", "2019"}, tokens)
	assert.Empty(t, WordTokenizer{}.Tokens("?!..."))
}

func TestContainsCJK(t *testing.T) {
	assert.True(t, ContainsCJK("ビジュアルアルファ"))
	assert.True(t, ContainsCJK("設立"))
	assert.False(t, ContainsCJK("visual alpha"))
}

func japaneseEntries() []*core.Entry {
	return []*core.Entry{
		{Question: "ビジュアルアルファは何をする会社ですか？", Keywords: []string{"サービス", "事業"}},
		{Question: "ビジュアルアルファはいつ設立されましたか？", Keywords: []string{"設立", "創業"}},
	}
}

func TestKagomeTokenizer(t *testing.T) {
	tok, err := NewKagomeTokenizer()
	require.NoError(t, err)

	tokens := tok.Tokens("ビジュアルアルファはいつ設立されましたか？")
	assert.Contains(t, tokens, "設立")
	assert.NotContains(t, tokens, "？", "punctuation is dropped")

	t.Run("keyword token pass on japanese", func(t *testing.T) {
		ix := NewIndex(japaneseEntries(), tok)
		matches := ix.Match("会社の設立はいつですか")
		require.NotEmpty(t, matches)
		assert.Equal(t, 1, matches[0].Position)
	})
}
