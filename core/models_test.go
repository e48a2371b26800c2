package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "plain text", content: "test content"},
		{name: "empty string", content: ""},
		{name: "japanese text", content: "ビジュアルアルファはいつ設立されましたか？"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestEntryID(t *testing.T) {
	en := EntryID(LocaleEnglish, "Who leads Visual Alpha?")
	ja := EntryID(LocaleJapanese, "Who leads Visual Alpha?")
	if en == ja {
		t.Errorf("EntryID() should differ across locales")
	}

	padded := EntryID(LocaleEnglish, "  Who leads Visual Alpha?  ")
	if en != padded {
		t.Errorf("EntryID() should ignore surrounding whitespace: %d vs %d", en, padded)
	}
}

func TestEntry_EmbeddingText(t *testing.T) {
	e := &Entry{
		Question:      "When was Visual Alpha founded?",
		Answer:        "December 2019.",
		RelatedTopics: []string{"founding", "tokyo"},
	}

	want := "When was Visual Alpha founded? December 2019. founding tokyo"
	if got := e.EmbeddingText(); got != want {
		t.Errorf("EmbeddingText() = %q, want %q", got, want)
	}
}

func TestEntry_Clone(t *testing.T) {
	e := &Entry{
		Question:      "q",
		Answer:        "a",
		RelatedTopics: []string{"x"},
		Keywords:      []string{"k"},
	}

	c := e.Clone()
	c.RelatedTopics[0] = "changed"
	c.Keywords[0] = "changed"

	if e.RelatedTopics[0] != "x" || e.Keywords[0] != "k" {
		t.Errorf("Clone() shares slices with the original")
	}
}
