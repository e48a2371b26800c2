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


// Package locale describes the per-language deployments of the assistant:
// canned responses, sentence terminator, default embedding model and the
// keyword tokenizer.
package locale

import (
	"fmt"
	"strings"

	"github.com/poiesic/faqit/core"
	"github.com/poiesic/faqit/lexical"
)

// Profile is the configuration injected into one locale deployment.
type Profile struct {
	Locale         core.Locale
	Name           string
	OutOfContext   string
	Apology        string
	Terminator     rune
	EmbeddingModel string

	// NewTokenizer returns the keyword tokenizer for the locale.
	NewTokenizer func() (lexical.Tokenizer, error)
}

// English returns the English deployment profile.
func English() Profile {
	return Profile{
		Locale: core.LocaleEnglish,
		Name:   "English",
		OutOfContext: "I don't have information on that. Please ask me something related to Visual Alpha. " +
			"I can answer about company overview, services, team, leadership, clients, technology, history, and future goals.",
		Apology:        "I apologize, I encountered an error. Please try asking your question differently.",
		Terminator:     '.',
		EmbeddingModel: "all-minilm",
		NewTokenizer: func() (lexical.Tokenizer, error) {
			return lexical.WordTokenizer{}, nil
		},
	}
}

// Japanese returns the Japanese deployment profile. Keywords are matched on
// kagome morphemes.
func Japanese() Profile {
	return Profile{
		Locale:         core.LocaleJapanese,
		Name:           "日本語",
		OutOfContext:   "すみません、その質問に対する回答が見つかりませんでした。",
		Apology:        "申し訳ありませんが、エラーが発生しました。",
		Terminator:     '。',
		EmbeddingModel: "paraphrase-multilingual",
		NewTokenizer: func() (lexical.Tokenizer, error) {
			return lexical.NewKagomeTokenizer()
		},
	}
}

// For returns the profile of a supported locale.
func For(l core.Locale) (Profile, error) {
	switch l {
	case core.LocaleEnglish:
		return English(), nil
	case core.LocaleJapanese:
		return Japanese(), nil
	}
	return Profile{}, fmt.Errorf("%w: %q", core.ErrUnknownLocale, l)
}

// Parse maps a request language string to a locale. "jp" is accepted as an
// alias of "ja".
func Parse(s string) (core.Locale, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "en", "english":
		return core.LocaleEnglish, nil
	case "ja", "jp", "japanese":
		return core.LocaleJapanese, nil
	}
	return "", fmt.Errorf("%w: %q", core.ErrUnknownLocale, s)
}
