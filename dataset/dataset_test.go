package dataset

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/poiesic/faqit/core"
	"github.com/poiesic/faqit/lexical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	tests := []struct {
		locale core.Locale
		size   int
	}{
		{core.LocaleEnglish, 18},
		{core.LocaleJapanese, 3},
	}

	for _, tt := range tests {
		t.Run(string(tt.locale), func(t *testing.T) {
			entries, err := Seed(tt.locale)
			require.NoError(t, err)
			require.Len(t, entries, tt.size)

			seen := make(map[core.ID]bool)
			for _, e := range entries {
				assert.Equal(t, tt.locale, e.Locale)
				core.NormalizeEntry(e)
				require.NoError(t, core.ValidateEntry(e))
				assert.False(t, seen[e.Id], "duplicate question %q", e.Question)
				seen[e.Id] = true
				assert.NotEmpty(t, e.Keywords)
				assert.True(t, strings.HasPrefix(e.ImagePath, "images/"))
			}
		})
	}

	t.Run("unknown locale", func(t *testing.T) {
		_, err := Seed("fr")
		assert.ErrorIs(t, err, core.ErrUnknownLocale)
	})

	t.Run("fresh copies", func(t *testing.T) {
		a := English()
		a[0].Keywords[0] = "changed"
		assert.NotEqual(t, "changed", English()[0].Keywords[0])
	})
}

func TestEnglish_DeleteMandateKeywords(t *testing.T) {
	entries := English()
	ix := lexical.NewIndex(entries, lexical.WordTokenizer{})

	matches := ix.Match("How do I delete a mandate?")
	require.NotEmpty(t, matches)

	top := entries[matches[0].Position]
	assert.Equal(t, "mandate_management", top.Category)
	assert.Equal(t, "images/delete_mandate.png", top.ImagePath)
}

func TestLoad(t *testing.T) {
	t.Run("defaults and normalization", func(t *testing.T) {
		doc := `[
			{"question": " Where is the office? ", "answer": "Tokyo.", "keywords": ["Office", "office"]},
			{"locale": "ja", "question": "本社はどこですか？", "answer": "東京です。", "category": "company_overview"}
		]`
		entries, err := Load(strings.NewReader(doc), core.LocaleEnglish)
		require.NoError(t, err)
		require.Len(t, entries, 2)

		assert.Equal(t, core.LocaleEnglish, entries[0].Locale)
		assert.Equal(t, "Where is the office?", entries[0].Question)
		assert.Equal(t, core.DefaultCategory, entries[0].Category)
		assert.Equal(t, []string{"office"}, entries[0].Keywords)
		assert.Equal(t, []string{}, entries[0].RelatedTopics)

		assert.Equal(t, core.LocaleJapanese, entries[1].Locale)
		assert.Equal(t, "company_overview", entries[1].Category)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := Load(strings.NewReader(`{"question": "not a list"}`), core.LocaleEnglish)
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("invalid record", func(t *testing.T) {
		_, err := Load(strings.NewReader(`[{"question": "no answer"}]`), core.LocaleEnglish)
		assert.ErrorIs(t, err, core.ErrInvalidEntry)
		assert.ErrorContains(t, err, "record 0")
	})

	t.Run("unknown locale", func(t *testing.T) {
		_, err := Load(strings.NewReader(`[{"locale": "fr", "question": "q", "answer": "a"}]`), core.LocaleEnglish)
		assert.ErrorIs(t, err, core.ErrUnknownLocale)
	})
}

func TestSaveLoad(t *testing.T) {
	entries := Japanese()
	for _, e := range entries {
		core.NormalizeEntry(e)
	}

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, entries))
	assert.Contains(t, buf.String(), "ビジュアルアルファ", "non-ASCII text is written verbatim")

	loaded, err := Load(&buf, core.LocaleEnglish)
	require.NoError(t, err)
	require.Len(t, loaded, len(entries))
	for i := range entries {
		assert.Equal(t, entries[i].Question, loaded[i].Question)
		assert.Equal(t, entries[i].Answer, loaded[i].Answer)
		assert.Equal(t, entries[i].Locale, loaded[i].Locale)
		assert.Equal(t, entries[i].Keywords, loaded[i].Keywords)
		assert.Equal(t, entries[i].RelatedTopics, loaded[i].RelatedTopics)
		assert.Equal(t, entries[i].Id, loaded[i].Id)
	}
}

func TestSaveFileLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faq.json")
	require.NoError(t, SaveFile(path, English()))

	loaded, err := LoadFile(path, core.LocaleJapanese)
	require.NoError(t, err)
	assert.Len(t, loaded, 18)
	assert.Equal(t, core.LocaleEnglish, loaded[0].Locale)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"), core.LocaleEnglish)
	assert.Error(t, err)
}
