// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"fmt"
	"strings"
)

// ValidateEntry validates an Entry according to domain rules.
//
// Validation rules:
//   - Question must not be blank
//   - Answer must not be blank
//   - Locale must be supported
//
// NOT validated (defaulted by NormalizeEntry):
//   - Category (blank becomes "general")
//   - Keywords and RelatedTopics (may be empty)
//   - ID (derived from locale and question)
func ValidateEntry(entry *Entry) error {
	if entry == nil {
		return fmt.Errorf("%w: entry is nil", ErrInvalidEntry)
	}

	if strings.TrimSpace(entry.Question) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, ErrEmptyQuestion)
	}

	if strings.TrimSpace(entry.Answer) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, ErrEmptyAnswer)
	}

	if err := ValidateLocale(entry.Locale); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, err)
	}

	return nil
}

// ValidateLocale validates that a Locale is supported.
func ValidateLocale(locale Locale) error {
	for _, l := range Locales {
		if l == locale {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
}

// NormalizeEntry applies the schema defaults in place: a blank category
// becomes DefaultCategory, keywords are trimmed, lowercased and deduplicated,
// nil slices become empty, and a zero ID is derived from the content.
func NormalizeEntry(entry *Entry) {
	entry.Question = strings.TrimSpace(entry.Question)
	entry.Answer = strings.TrimSpace(entry.Answer)
	entry.Category = strings.TrimSpace(entry.Category)
	if entry.Category == "" {
		entry.Category = DefaultCategory
	}

	if entry.RelatedTopics == nil {
		entry.RelatedTopics = []string{}
	}

	seen := make(map[string]bool, len(entry.Keywords))
	keywords := make([]string, 0, len(entry.Keywords))
	for _, kw := range entry.Keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" || seen[kw] {
			continue
		}
		seen[kw] = true
		keywords = append(keywords, kw)
	}
	entry.Keywords = keywords

	if entry.Id == 0 {
		entry.Id = EntryID(entry.Locale, entry.Question)
	}
}
