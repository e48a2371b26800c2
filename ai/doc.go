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


// Package ai provides abstractions for the embedding services used by faqit.
//
// Knowledge bases consume an Embedder both when they are built and when they
// are queried. The two calls must go to the same model, so each locale owns
// exactly one AIProvider for its lifetime.
//
// # Implementation Packages
//
//   - ai/openai: OpenAI-compatible embedding APIs (Ollama, LocalAI, vLLM, OpenAI)
//   - ai/local: offline feature-hashing embedder, no model server required
//   - ai/mock: test doubles with injectable behavior
//
// # Constructor Return Type Pattern
//
// Public constructors (openai.NewProvider, local.NewProvider) return INTERFACE
// types. Test utility constructors (mock.NewMockEmbedder) return CONCRETE types
// so tests can inject behavior and assert on call counts.
//
// # Usage Example
//
//	config := ai.NewConfig(ai.WithEmbeddingModel("all-minilm"))
//	provider, err := openai.NewProvider(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	vector, err := provider.Embedder().EmbedText(ctx, "How do I delete a mandate?")
package ai
