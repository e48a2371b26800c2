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


// Package storage provides the persistence layer for FAQ corpora.
//
// EntryRepository keeps the entries of each locale in insertion order so
// a knowledge base rebuilt from storage ranks ties the same way every time.
// The badger subpackage is the embedded implementation:
//
//	repo, err := badger.NewEntryRepository(backend)
//	entries, err := repo.ListEntries(ctx, core.LocaleEnglish)
//
// Use in tests with in-memory storage:
//
//	repo, backend, err := badger.NewMemoryRepository()
//	defer backend.Close()
//	defer repo.Close()
//
// Records are encoded with hand-composed MUS serializers (see EntryMUS).
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines.
package storage
