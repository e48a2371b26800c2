// Package dataset holds the built-in FAQ corpora and the JSON interchange
// format used to import and export entries.
package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/poiesic/faqit/core"
)

// ErrMalformed indicates a JSON document that is not a list of entries.
var ErrMalformed = errors.New("malformed dataset")

// Seed returns the built-in corpus of a locale.
func Seed(locale core.Locale) ([]*core.Entry, error) {
	switch locale {
	case core.LocaleEnglish:
		return English(), nil
	case core.LocaleJapanese:
		return Japanese(), nil
	}
	return nil, fmt.Errorf("%w: %q", core.ErrUnknownLocale, locale)
}

// Record is the JSON shape of one entry. Missing optional fields take the
// schema defaults when the entry is normalized.
type Record struct {
	Locale        string   `json:"locale,omitempty"`
	Question      string   `json:"question"`
	Answer        string   `json:"answer"`
	Category      string   `json:"category,omitempty"`
	ImagePath     string   `json:"image_path,omitempty"`
	RelatedTopics []string `json:"related_topics,omitempty"`
	Keywords      []string `json:"keywords,omitempty"`
}

// FromEntry converts an entry to its JSON record.
func FromEntry(e *core.Entry) Record {
	return Record{
		Locale:        string(e.Locale),
		Question:      e.Question,
		Answer:        e.Answer,
		Category:      e.Category,
		ImagePath:     e.ImagePath,
		RelatedTopics: e.RelatedTopics,
		Keywords:      e.Keywords,
	}
}

// Entry converts the record to an entry. A record without a locale takes
// fallback.
func (r Record) Entry(fallback core.Locale) *core.Entry {
	locale := core.Locale(r.Locale)
	if locale == "" {
		locale = fallback
	}
	return &core.Entry{
		Locale:        locale,
		Question:      r.Question,
		Answer:        r.Answer,
		Category:      r.Category,
		ImagePath:     r.ImagePath,
		RelatedTopics: append([]string{}, r.RelatedTopics...),
		Keywords:      append([]string{}, r.Keywords...),
	}
}

// Load decodes a JSON array of records. Every entry is normalized and
// validated; the first invalid record fails the whole load.
func Load(r io.Reader, fallback core.Locale) ([]*core.Entry, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	entries := make([]*core.Entry, 0, len(records))
	for i, rec := range records {
		e := rec.Entry(fallback)
		core.NormalizeEntry(e)
		if err := core.ValidateEntry(e); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Save encodes entries as an indented JSON array.
func Save(w io.Writer, entries []*core.Entry) error {
	records := make([]Record, len(entries))
	for i, e := range entries {
		records[i] = FromEntry(e)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(records)
}

// LoadFile reads a dataset file.
func LoadFile(path string, fallback core.Locale) ([]*core.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f, fallback)
}

// SaveFile writes entries to path, replacing any existing file.
func SaveFile(path string, entries []*core.Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Save(f, entries); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
