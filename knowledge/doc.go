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


// Package knowledge provides hybrid keyword and semantic search over a
// locale's FAQ corpus.
//
// A KnowledgeBase is built in one pass from an ordered list of entries and
// is immutable afterwards:
//
//	kb, err := knowledge.Build(ctx, entries, provider.Embedder(),
//	    knowledge.WithLocale(core.LocaleEnglish))
//	results, err := kb.Search(ctx, "How do I delete a mandate?", 2, 0.30)
//
// A curated keyword hit always wins and yields exactly one result. Without a
// keyword hit the semantic top-k above the score threshold is returned.
//
// Handle holds the current base for a locale and replaces it atomically on
// Reload, so in-flight searches finish against the base they started on.
package knowledge
