package core

import (
	"encoding/binary"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// Entry IDs are content-based so the same question in the same locale
// always maps to the same record.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Locale identifies a language deployment. Each locale owns its own corpus,
// knowledge base and embedding model.
type Locale string

const (
	LocaleEnglish  Locale = "en"
	LocaleJapanese Locale = "ja"
)

// Locales lists every supported locale in display order.
var Locales = []Locale{LocaleEnglish, LocaleJapanese}

// DefaultCategory is assigned to entries without a category.
const DefaultCategory = "general"

// Entry is one FAQ item. Entries are treated as immutable once they are part
// of a built knowledge base.
type Entry struct {
	Id            ID
	Locale        Locale
	Question      string
	Answer        string
	Category      string
	ImagePath     string   // Empty when the entry has no illustration
	RelatedTopics []string // Display order matters
	Keywords      []string // Curated lexical triggers, lowercase
	InsertedAt    time.Time
}

// EntryID derives the content-based ID of an entry from its locale and question.
func EntryID(locale Locale, question string) ID {
	return IDFromContent(string(locale) + ":" + strings.TrimSpace(question))
}

// HasImage reports whether the entry carries an image reference.
func (e *Entry) HasImage() bool {
	return e.ImagePath != ""
}

// EmbeddingText is the text embedded for semantic search: the question,
// the answer and the related topics, so the vector reflects the full content.
func (e *Entry) EmbeddingText() string {
	return e.Question + " " + e.Answer + " " + strings.Join(e.RelatedTopics, " ")
}

// Clone returns a deep copy of the entry.
func (e *Entry) Clone() *Entry {
	c := *e
	c.RelatedTopics = append([]string{}, e.RelatedTopics...)
	c.Keywords = append([]string{}, e.Keywords...)
	return &c
}

// MatchKind tells which retrieval path produced a result.
type MatchKind string

const (
	MatchKindKeyword  MatchKind = "keyword"
	MatchKindSemantic MatchKind = "semantic"
)

// ResultView is one ranked hit returned by a knowledge base search.
type ResultView struct {
	Position      int // Index of the entry in the knowledge base corpus
	Answer        string
	Score         float32
	Question      string
	Category      string
	ImagePath     string
	RelatedTopics []string
	Kind          MatchKind
}

// Confidence labels a response for display.
type Confidence string

const (
	ConfidenceHigh         Confidence = "high"
	ConfidenceMedium       Confidence = "medium"
	ConfidenceLow          Confidence = "low"
	ConfidenceOutOfContext Confidence = "out_of_context"
	ConfidenceError        Confidence = "error"
)

// Interaction is one entry of the conversation log.
type Interaction struct {
	ID        string
	Locale    Locale
	Query     string
	Response  string
	ImagePath string
	Topics    []string
	Score     float32
	Kind      MatchKind
	At        time.Time
}
